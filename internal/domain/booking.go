package domain

import (
	"strconv"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusDone      BookingStatus = "done"
)

// Terminal reports whether the client should offer no further logistics
// transitions. The backend stays authoritative; this is advisory only.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusDone
}

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is the canonical reservation entity. Status and PaymentStatus are
// orthogonal: one tracks logistics, the other money. Both are open enums;
// unknown backend values pass through untouched.
type Booking struct {
	BookingID         string
	UserID            string
	PackageID         string
	BookingCode       string
	TotalParticipants int
	DepartureDate     string
	ReturnDate        string
	TotalPrice        string
	Status            BookingStatus
	PaymentStatus     PaymentStatus
	PaymentDeadline   string

	FullName       string
	Phone          string
	Email          string
	PassportNumber string
	PassportExpiry string
	Nationality    string

	// Package snapshot, display only. Never used for booking decisions.
	PackageName  string
	PackageImage string
	Location     string
	Continent    string
	Airline      string
	Airport      string
	Period       string
}

// Downloadable reports whether a ticket artifact may be requested.
func (b *Booking) Downloadable() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// TicketFilename derives the local save name for the ticket artifact.
func (b *Booking) TicketFilename() string {
	code := b.BookingCode
	if code == "" {
		code = b.BookingID
	}
	return "Tiket-" + code + ".pdf"
}

// EstimateReturnDate derives a return date from the departure date and the
// package period ("9D", "9 Days"). The backend exposes no authoritative
// return date, so this is a display approximation only. Pending backend
// clarification it must never feed booking decisions.
func EstimateReturnDate(departureDate, period string) string {
	t, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		return ""
	}

	digits := period
	for i, r := range period {
		if r < '0' || r > '9' {
			digits = period[:i]
			break
		}
	}
	days, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil || days < 1 {
		return ""
	}
	return t.AddDate(0, 0, days-1).Format("2006-01-02")
}

// Order is the admin-facing projection of the booking aggregate. It carries
// fields the customer view never sees and is the shape admin mutations act on.
type Order struct {
	Booking
	SpecialRequest string
	PaymentMethod  string
}
