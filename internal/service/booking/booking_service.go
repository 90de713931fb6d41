package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/envelope"
	"github.com/Travel-Muslim/Frontend-sub000/internal/normalize"
)

// BookingUseCase is the surface the handlers consume.
//
// Propagation policy is deliberate and uneven: Create returns an error because
// the caller must distinguish "failed" from "absent"; list methods degrade to
// an empty slice and Detail to nil because a transient fetch failure and "no
// results" render identically; boolean mutations report false instead of an
// error so inline failure needs no exception path. A failed fetch and an empty
// list being indistinguishable is a documented trade-off, not an accident.
type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Active(ctx context.Context) []domain.Booking
	History(ctx context.Context) []domain.Booking
	Filtered(ctx context.Context, status domain.BookingStatus, dateFrom, dateTo string) []domain.Booking
	Detail(ctx context.Context, bookingID string) *domain.Booking
	AdminOrders(ctx context.Context, status domain.BookingStatus, dateFrom, dateTo string) []domain.Order
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) bool
	UpdatePayment(ctx context.Context, bookingID string, status domain.PaymentStatus) bool
	Cancel(ctx context.Context, bookingID, reason string) bool
}

// API is the slice of the HTTP adapter this service needs.
type API interface {
	GetJSON(ctx context.Context, path string, query url.Values) (interface{}, error)
	PostJSON(ctx context.Context, path string, body interface{}) (interface{}, error)
	PutJSON(ctx context.Context, path string, body interface{}) (interface{}, error)
	PatchJSON(ctx context.Context, path string, body interface{}) (interface{}, error)
}

type BookingService struct {
	api API
}

type Passenger struct {
	FullName       string `json:"fullname"`
	PassportNumber string `json:"passport_number"`
	PassportExpiry string `json:"passport_expiry"`
	Nationality    string `json:"nationality"`
}

type CreateBookingInput struct {
	PackageID         string      `json:"package_id"`
	TotalParticipants int         `json:"total_participants"`
	DepartureDate     string      `json:"departure_date"`
	FullName          string      `json:"fullname"`
	Phone             string      `json:"phone"`
	Email             string      `json:"email"`
	PassportNumber    string      `json:"passport_number"`
	PassportExpiry    string      `json:"passport_expiry"`
	Nationality       string      `json:"nationality"`
	PaymentMethod     string      `json:"payment_method"`
	SpecialRequest    string      `json:"special_request"`
	Passengers        []Passenger `json:"passengers"`
}

func NewBookingService(api API) *BookingService {
	return &BookingService{api: api}
}

// Create submits a new booking and returns the normalized result. Unlike the
// read paths this fails loudly: the caller blocks navigation on error.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.PackageID == "" {
		return nil, errors.New("package id is required")
	}
	if input.TotalParticipants < 1 {
		return nil, errors.New("at least one participant is required")
	}
	if input.FullName == "" || input.Email == "" {
		return nil, errors.New("contact fullname and email are required")
	}

	passengers := make([]map[string]interface{}, 0, len(input.Passengers))
	for _, p := range input.Passengers {
		passengers = append(passengers, map[string]interface{}{
			"fullname":        p.FullName,
			"passport_number": p.PassportNumber,
			"passport_expiry": p.PassportExpiry,
			"nationality":     p.Nationality,
		})
	}

	body := map[string]interface{}{
		"package_id":         input.PackageID,
		"total_participants": input.TotalParticipants,
		"departure_date":     input.DepartureDate,
		"fullname":           input.FullName,
		"phone":              input.Phone,
		"email":              input.Email,
		"passport_number":    input.PassportNumber,
		"passport_expiry":    input.PassportExpiry,
		"nationality":        input.Nationality,
		"payment_method":     input.PaymentMethod,
		"special_request":    input.SpecialRequest,
		"passengers":         passengers,
	}

	raw, err := s.api.PostJSON(ctx, "/bookings", body)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	obj := envelope.UnwrapObject(raw)
	if obj == nil {
		return nil, errors.New("create booking: backend returned no booking")
	}
	created := normalize.Booking(obj)
	return &created, nil
}

func (s *BookingService) Active(ctx context.Context) []domain.Booking {
	return s.list(ctx, "/bookings/active", nil)
}

func (s *BookingService) History(ctx context.Context) []domain.Booking {
	return s.list(ctx, "/bookings/history", nil)
}

func (s *BookingService) Filtered(ctx context.Context, status domain.BookingStatus, dateFrom, dateTo string) []domain.Booking {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if dateFrom != "" {
		query.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		query.Set("date_to", dateTo)
	}
	return s.list(ctx, "/bookings", query)
}

// AdminOrders is the back-office projection of the same list endpoint: the
// booking fields plus special requests and payment method. Same degrade-to-
// empty policy as the customer lists.
func (s *BookingService) AdminOrders(ctx context.Context, status domain.BookingStatus, dateFrom, dateTo string) []domain.Order {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if dateFrom != "" {
		query.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		query.Set("date_to", dateTo)
	}

	raw, err := s.api.GetJSON(ctx, "/bookings", query)
	if err != nil {
		log.Printf("list admin orders: %v", err)
		return []domain.Order{}
	}
	return normalize.Orders(envelope.UnwrapList(raw))
}

// Detail returns the normalized booking or nil on absence or any failure.
// The same logical payload arrives wrapped as {results: obj}, {data: obj} or
// a bare object depending on the endpoint revision; the unwrapper handles all.
func (s *BookingService) Detail(ctx context.Context, bookingID string) *domain.Booking {
	raw, err := s.api.GetJSON(ctx, "/bookings/"+bookingID, nil)
	if err != nil {
		log.Printf("fetch booking %s: %v", bookingID, err)
		return nil
	}

	obj := envelope.UnwrapObject(raw)
	if obj == nil {
		return nil
	}
	b := normalize.Booking(obj)
	return &b
}

// UpdateStatus asks the backend to transition the booking's logistics status.
// Repeating the same transition is an observable success: the backend treats
// it as a no-op and this client reports true both times.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) bool {
	_, err := s.api.PutJSON(ctx, "/bookings/"+bookingID+"/admin-update-status",
		map[string]interface{}{"status": string(status)})
	if err != nil {
		log.Printf("update status for booking %s: %v", bookingID, err)
		return false
	}
	return true
}

func (s *BookingService) UpdatePayment(ctx context.Context, bookingID string, status domain.PaymentStatus) bool {
	_, err := s.api.PutJSON(ctx, "/bookings/"+bookingID+"/admin-update-payment",
		map[string]interface{}{"payment_status": string(status)})
	if err != nil {
		log.Printf("update payment for booking %s: %v", bookingID, err)
		return false
	}
	return true
}

// Cancel transitions the booking to cancelled. The reason is free text and
// not validated here; the backend owns the transition rules.
func (s *BookingService) Cancel(ctx context.Context, bookingID, reason string) bool {
	body := map[string]interface{}{}
	if reason != "" {
		body["cancel_reason"] = reason
	}
	_, err := s.api.PatchJSON(ctx, "/bookings/"+bookingID+"/cancel", body)
	if err != nil {
		log.Printf("cancel booking %s: %v", bookingID, err)
		return false
	}
	return true
}

func (s *BookingService) list(ctx context.Context, path string, query url.Values) []domain.Booking {
	raw, err := s.api.GetJSON(ctx, path, query)
	if err != nil {
		log.Printf("list bookings %s: %v", path, err)
		return []domain.Booking{}
	}
	return normalize.Bookings(envelope.UnwrapList(raw))
}

var _ BookingUseCase = (*BookingService)(nil)
