package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusDone.Terminal())
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.False(t, BookingStatus("rescheduled").Terminal())
}

func TestBooking_Downloadable(t *testing.T) {
	b := Booking{PaymentStatus: PaymentStatusPaid}
	assert.True(t, b.Downloadable())

	for _, ps := range []PaymentStatus{PaymentStatusUnpaid, PaymentStatusRefunded, ""} {
		b.PaymentStatus = ps
		assert.False(t, b.Downloadable(), string(ps))
	}
}

func TestBooking_TicketFilename(t *testing.T) {
	b := Booking{BookingID: "B1", BookingCode: "UMR-2026-001"}
	assert.Equal(t, "Tiket-UMR-2026-001.pdf", b.TicketFilename())

	b.BookingCode = ""
	assert.Equal(t, "Tiket-B1.pdf", b.TicketFilename())
}

func TestEstimateReturnDate(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		period    string
		want      string
	}{
		{"days suffix", "2026-09-01", "9 Days", "2026-09-09"},
		{"compact", "2026-09-01", "3D", "2026-09-03"},
		{"single day", "2026-09-01", "1 Day", "2026-09-01"},
		{"bad departure", "soon", "9 Days", ""},
		{"bad period", "2026-09-01", "a week", ""},
		{"empty period", "2026-09-01", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReturnDate(tt.departure, tt.period))
		})
	}
}
