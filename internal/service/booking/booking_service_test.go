package booking

import (
	"context"
	"net/url"
	"testing"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) GetJSON(ctx context.Context, path string, query url.Values) (interface{}, error) {
	args := m.Called(ctx, path, query)
	return args.Get(0), args.Error(1)
}

func (m *MockAPI) PostJSON(ctx context.Context, path string, body interface{}) (interface{}, error) {
	args := m.Called(ctx, path, body)
	return args.Get(0), args.Error(1)
}

func (m *MockAPI) PutJSON(ctx context.Context, path string, body interface{}) (interface{}, error) {
	args := m.Called(ctx, path, body)
	return args.Get(0), args.Error(1)
}

func (m *MockAPI) PatchJSON(ctx context.Context, path string, body interface{}) (interface{}, error) {
	args := m.Called(ctx, path, body)
	return args.Get(0), args.Error(1)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		PackageID:         "P1",
		TotalParticipants: 2,
		DepartureDate:     "2026-10-01",
		FullName:          "Siti Rahma",
		Phone:             "+628123456789",
		Email:             "siti@example.com",
		PassportNumber:    "A1234567",
		PassportExpiry:    "2030-01-01",
		Nationality:       "ID",
		PaymentMethod:     "bank_transfer",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("PostJSON", ctx, "/bookings", mock.Anything).Return(map[string]interface{}{
		"data": map[string]interface{}{
			"booking_id":          "B1",
			"booking_code":        "UMR-2026-001",
			"booking_total_price": "5000000",
			"booking_status":      "pending",
		},
	}, nil).Once()

	created, err := service.Create(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "B1", created.BookingID)
	assert.Equal(t, "UMR-2026-001", created.BookingCode)
	assert.Equal(t, domain.BookingStatusPending, created.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, created.PaymentStatus)
	mockAPI.AssertExpectations(t)
}

func TestBookingService_Create_PropagatesFailure(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("PostJSON", ctx, "/bookings", mock.Anything).
		Return(nil, &httpclient.APIError{Status: 500, Message: "request failed"}).Once()

	created, err := service.Create(ctx, validInput())

	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestBookingService_Create_ValidatesInput(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)

	input := validInput()
	input.TotalParticipants = 0
	_, err := service.Create(context.Background(), input)
	assert.Error(t, err)

	input = validInput()
	input.PackageID = ""
	_, err = service.Create(context.Background(), input)
	assert.Error(t, err)

	mockAPI.AssertNotCalled(t, "PostJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Active_EmptyResults(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("GetJSON", ctx, "/bookings/active", url.Values(nil)).Return(map[string]interface{}{
		"results": []interface{}{},
	}, nil).Once()

	out := service.Active(ctx)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBookingService_Active_DegradesToEmptyOnFailure(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("GetJSON", ctx, "/bookings/active", url.Values(nil)).
		Return(nil, &httpclient.APIError{Message: "network request failed"}).Once()

	out := service.Active(ctx)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBookingService_Filtered_BuildsQuery(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	expected := url.Values{}
	expected.Set("status", "confirmed")
	expected.Set("date_from", "2026-01-01")
	expected.Set("date_to", "2026-06-30")

	mockAPI.On("GetJSON", ctx, "/bookings", expected).Return([]interface{}{
		map[string]interface{}{"booking_id": "B1", "booking_status": "confirmed"},
	}, nil).Once()

	out := service.Filtered(ctx, domain.BookingStatusConfirmed, "2026-01-01", "2026-06-30")

	assert.Len(t, out, 1)
	assert.Equal(t, domain.BookingStatusConfirmed, out[0].Status)
	mockAPI.AssertExpectations(t)
}

func TestBookingService_AdminOrders_ProjectsAdminFields(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	expected := url.Values{}
	expected.Set("status", "pending")

	mockAPI.On("GetJSON", ctx, "/bookings", expected).Return(map[string]interface{}{
		"results": []interface{}{
			map[string]interface{}{
				"booking_id":      "B1",
				"special_request": "window seat",
				"payment_method":  "bank_transfer",
			},
		},
	}, nil).Once()

	orders := service.AdminOrders(ctx, domain.BookingStatusPending, "", "")

	assert.Len(t, orders, 1)
	assert.Equal(t, "B1", orders[0].BookingID)
	assert.Equal(t, "window seat", orders[0].SpecialRequest)
	assert.Equal(t, "bank_transfer", orders[0].PaymentMethod)
}

func TestBookingService_Detail_SameBookingAcrossEnvelopes(t *testing.T) {
	inner := map[string]interface{}{
		"booking_id":          "B1",
		"booking_total_price": "100000",
		"booking_status":      "confirmed",
	}
	envelopes := []interface{}{
		map[string]interface{}{"results": inner},
		map[string]interface{}{"data": inner},
		inner,
	}

	var got []domain.Booking
	for _, raw := range envelopes {
		mockAPI := &MockAPI{}
		service := NewBookingService(mockAPI)
		ctx := context.Background()
		mockAPI.On("GetJSON", ctx, "/bookings/B1", url.Values(nil)).Return(raw, nil).Once()

		b := service.Detail(ctx, "B1")
		assert.NotNil(t, b)
		got = append(got, *b)
	}

	assert.Equal(t, got[0], got[1])
	assert.Equal(t, got[1], got[2])
	assert.Equal(t, "100000", got[0].TotalPrice)
}

func TestBookingService_Detail_NilOnFailure(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("GetJSON", ctx, "/bookings/missing", url.Values(nil)).
		Return(nil, &httpclient.APIError{Status: 404, Message: "not found"}).Once()

	assert.Nil(t, service.Detail(ctx, "missing"))
}

func TestBookingService_UpdateStatus_RepeatedIsStillSuccess(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	body := map[string]interface{}{"status": "confirmed"}
	// The backend treats a repeated transition as a no-op and answers 200 both
	// times; the client reports success both times.
	mockAPI.On("PutJSON", ctx, "/bookings/B1/admin-update-status", body).
		Return(map[string]interface{}{"data": map[string]interface{}{}}, nil).Twice()

	assert.True(t, service.UpdateStatus(ctx, "B1", domain.BookingStatusConfirmed))
	assert.True(t, service.UpdateStatus(ctx, "B1", domain.BookingStatusConfirmed))
	mockAPI.AssertExpectations(t)
}

func TestBookingService_UpdatePayment_FalseOnFailure(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("PutJSON", ctx, "/bookings/B1/admin-update-payment", mock.Anything).
		Return(nil, &httpclient.APIError{Status: 500, Message: "request failed"}).Once()

	assert.False(t, service.UpdatePayment(ctx, "B1", domain.PaymentStatusPaid))
}

func TestBookingService_Cancel_FalseOn500NoPanic(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("PatchJSON", ctx, "/bookings/B1/cancel", map[string]interface{}{"cancel_reason": "change of plans"}).
		Return(nil, &httpclient.APIError{Status: 500, Message: "request failed"}).Once()

	assert.NotPanics(t, func() {
		assert.False(t, service.Cancel(ctx, "B1", "change of plans"))
	})
}

func TestBookingService_Cancel_OmitsEmptyReason(t *testing.T) {
	mockAPI := &MockAPI{}
	service := NewBookingService(mockAPI)
	ctx := context.Background()

	mockAPI.On("PatchJSON", ctx, "/bookings/B1/cancel", map[string]interface{}{}).
		Return(map[string]interface{}{}, nil).Once()

	assert.True(t, service.Cancel(ctx, "B1", ""))
	mockAPI.AssertExpectations(t)
}
