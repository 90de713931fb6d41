package api

import (
	"context"
	"net/http"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/booking"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/ticket"
	"github.com/gin-gonic/gin"
)

// TicketIssuer is implemented by ticket.TicketService.
type TicketIssuer interface {
	Download(ctx context.Context, booking *domain.Booking) *ticket.Ticket
}

type BookingHandler struct {
	service booking.BookingUseCase
	tickets TicketIssuer
}

type bookingResponse struct {
	BookingID         string `json:"booking_id"`
	BookingCode       string `json:"booking_code"`
	PackageID         string `json:"package_id"`
	PackageName       string `json:"package_name"`
	TotalParticipants int    `json:"total_participants"`
	DepartureDate     string `json:"departure_date"`
	ReturnDate        string `json:"return_date,omitempty"`
	TotalPrice        string `json:"total_price"`
	Status            string `json:"status"`
	PaymentStatus     string `json:"payment_status"`
	PaymentDeadline   string `json:"payment_deadline,omitempty"`
	FullName          string `json:"fullname"`
	Email             string `json:"email"`
}

type orderResponse struct {
	bookingResponse
	SpecialRequest string `json:"special_request,omitempty"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
	PassportExpiry string `json:"passport_expiry,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type cancelRequest struct {
	CancelReason string `json:"cancel_reason"`
}

func NewBookingHandler(service booking.BookingUseCase, tickets TicketIssuer) *BookingHandler {
	return &BookingHandler{service: service, tickets: tickets}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.filtered)
	router.GET("/active", h.active)
	router.GET("/history", h.history)
	router.GET("/admin-orders", h.adminOrders)
	router.GET("/:id", h.detail)
	router.PATCH("/:id/cancel", h.cancel)
	router.PUT("/:id/status", h.updateStatus)
	router.PUT("/:id/payment", h.updatePayment)
	router.GET("/:id/ticket", h.downloadTicket)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) active(c *gin.Context) {
	c.JSON(http.StatusOK, toBookingResponses(h.service.Active(c.Request.Context())))
}

func (h *BookingHandler) history(c *gin.Context) {
	c.JSON(http.StatusOK, toBookingResponses(h.service.History(c.Request.Context())))
}

func (h *BookingHandler) filtered(c *gin.Context) {
	bookings := h.service.Filtered(
		c.Request.Context(),
		domain.BookingStatus(c.Query("status")),
		c.Query("date_from"),
		c.Query("date_to"),
	)
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) adminOrders(c *gin.Context) {
	orders := h.service.AdminOrders(
		c.Request.Context(),
		domain.BookingStatus(c.Query("status")),
		c.Query("date_from"),
		c.Query("date_to"),
	)

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, orderResponse{
			bookingResponse: toBookingResponse(&orders[i].Booking),
			SpecialRequest:  orders[i].SpecialRequest,
			PaymentMethod:   orders[i].PaymentMethod,
			PassportNumber:  orders[i].PassportNumber,
			PassportExpiry:  orders[i].PassportExpiry,
			Nationality:     orders[i].Nationality,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) detail(c *gin.Context) {
	b := h.service.Detail(c.Request.Context(), c.Param("id"))
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	var req cancelRequest
	_ = c.ShouldBindJSON(&req)

	if ok := h.service.Cancel(c.Request.Context(), c.Param("id"), req.CancelReason); !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "cancel failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(domain.BookingStatusCancelled)})
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status)); !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "status update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *BookingHandler) updatePayment(c *gin.Context) {
	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok := h.service.UpdatePayment(c.Request.Context(), c.Param("id"), domain.PaymentStatus(req.PaymentStatus)); !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_status": req.PaymentStatus})
}

// downloadTicket gates on payment before asking the backend for the artifact,
// so an unpaid booking never costs a round trip.
func (h *BookingHandler) downloadTicket(c *gin.Context) {
	b := h.service.Detail(c.Request.Context(), c.Param("id"))
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if !b.Downloadable() {
		c.JSON(http.StatusConflict, gin.H{"error": "payment is not confirmed"})
		return
	}

	t := h.tickets.Download(c.Request.Context(), b)
	if t == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "ticket download failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+t.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", t.Data)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	returnDate := b.ReturnDate
	if returnDate == "" {
		// Display approximation from departure + package period; the backend
		// has no authoritative return date.
		returnDate = domain.EstimateReturnDate(b.DepartureDate, b.Period)
	}
	return bookingResponse{
		BookingID:         b.BookingID,
		BookingCode:       b.BookingCode,
		PackageID:         b.PackageID,
		PackageName:       b.PackageName,
		TotalParticipants: b.TotalParticipants,
		DepartureDate:     b.DepartureDate,
		ReturnDate:        returnDate,
		TotalPrice:        b.TotalPrice,
		Status:            string(b.Status),
		PaymentStatus:     string(b.PaymentStatus),
		PaymentDeadline:   b.PaymentDeadline,
		FullName:          b.FullName,
		Email:             b.Email,
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}
