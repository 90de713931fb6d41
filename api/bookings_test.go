package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/booking"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/ticket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Active(ctx context.Context) []domain.Booking {
	return m.Called(ctx).Get(0).([]domain.Booking)
}

func (m *MockBookingUseCase) History(ctx context.Context) []domain.Booking {
	return m.Called(ctx).Get(0).([]domain.Booking)
}

func (m *MockBookingUseCase) Filtered(ctx context.Context, status domain.BookingStatus, dateFrom, dateTo string) []domain.Booking {
	return m.Called(ctx, status, dateFrom, dateTo).Get(0).([]domain.Booking)
}

func (m *MockBookingUseCase) AdminOrders(ctx context.Context, status domain.BookingStatus, dateFrom, dateTo string) []domain.Order {
	return m.Called(ctx, status, dateFrom, dateTo).Get(0).([]domain.Order)
}

func (m *MockBookingUseCase) Detail(ctx context.Context, bookingID string) *domain.Booking {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Booking)
}

func (m *MockBookingUseCase) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) bool {
	return m.Called(ctx, bookingID, status).Bool(0)
}

func (m *MockBookingUseCase) UpdatePayment(ctx context.Context, bookingID string, status domain.PaymentStatus) bool {
	return m.Called(ctx, bookingID, status).Bool(0)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, bookingID, reason string) bool {
	return m.Called(ctx, bookingID, reason).Bool(0)
}

type MockTicketIssuer struct {
	mock.Mock
}

func (m *MockTicketIssuer) Download(ctx context.Context, b *domain.Booking) *ticket.Ticket {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*ticket.Ticket)
}

func newTestRouter(service booking.BookingUseCase, tickets TicketIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(service, tickets).Register(router.Group("/bookings"))
	return router
}

func TestBookingHandler_Create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(mockService, &MockTicketIssuer{})

	created := &domain.Booking{
		BookingID:     "B1",
		BookingCode:   "UMR-2026-001",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	mockService.On("Create", mock.Anything, mock.AnythingOfType("booking.CreateBookingInput")).
		Return(created, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{
		"package_id":         "P1",
		"total_participants": 2,
		"fullname":           "Siti Rahma",
		"email":              "siti@example.com",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "B1", resp.BookingID)
	assert.Equal(t, "pending", resp.Status)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_Create_BackendFailure(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(mockService, &MockTicketIssuer{})

	mockService.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.New("create booking: request failed (status 500)")).Once()

	body, _ := json.Marshal(map[string]interface{}{"package_id": "P1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBookingHandler_Detail_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(mockService, &MockTicketIssuer{})

	mockService.On("Detail", mock.Anything, "missing").Return(nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Active(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(mockService, &MockTicketIssuer{})

	mockService.On("Active", mock.Anything).Return([]domain.Booking{
		{BookingID: "B1", Status: domain.BookingStatusConfirmed},
	}).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/active", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []bookingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "confirmed", resp[0].Status)
}

func TestBookingHandler_AdminOrders(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(mockService, &MockTicketIssuer{})

	mockService.On("AdminOrders", mock.Anything, domain.BookingStatusPending, "", "").
		Return([]domain.Order{{
			Booking:        domain.Booking{BookingID: "B1", Status: domain.BookingStatusPending},
			SpecialRequest: "window seat",
		}}).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/admin-orders?status=pending", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []orderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "window seat", resp[0].SpecialRequest)
}

func TestBookingHandler_TicketGateBlocksUnpaid(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTickets := &MockTicketIssuer{}
	router := newTestRouter(mockService, mockTickets)

	unpaid := &domain.Booking{BookingID: "B1", PaymentStatus: domain.PaymentStatusUnpaid}
	mockService.On("Detail", mock.Anything, "B1").Return(unpaid).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/B1/ticket", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	// The gate fires before the issuance client: no round trip for unpaid.
	mockTickets.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestBookingHandler_TicketDownload(t *testing.T) {
	mockService := &MockBookingUseCase{}
	mockTickets := &MockTicketIssuer{}
	router := newTestRouter(mockService, mockTickets)

	paid := &domain.Booking{
		BookingID:     "B1",
		BookingCode:   "UMR-2026-001",
		PaymentStatus: domain.PaymentStatusPaid,
	}
	mockService.On("Detail", mock.Anything, "B1").Return(paid).Once()
	mockTickets.On("Download", mock.Anything, paid).
		Return(&ticket.Ticket{Filename: "Tiket-UMR-2026-001.pdf", Data: []byte("%PDF")}).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/B1/ticket", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Tiket-UMR-2026-001.pdf")
	assert.Equal(t, "%PDF", w.Body.String())
}

func TestBookingHandler_UpdateStatus_Failure(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(mockService, &MockTicketIssuer{})

	mockService.On("UpdateStatus", mock.Anything, "B1", domain.BookingStatusConfirmed).
		Return(false).Once()

	body, _ := json.Marshal(map[string]string{"status": "confirmed"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/bookings/B1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBookingHandler_Cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newTestRouter(mockService, &MockTicketIssuer{})

	mockService.On("Cancel", mock.Anything, "B1", "change of plans").Return(true).Once()

	body, _ := json.Marshal(map[string]string{"cancel_reason": "change of plans"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/B1/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
