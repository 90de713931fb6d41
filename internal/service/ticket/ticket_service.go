package ticket

import (
	"context"
	"log"

	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
)

// Binary is the slice of the HTTP adapter this service needs.
type Binary interface {
	GetBinary(ctx context.Context, path, accept string) ([]byte, error)
}

// Ticket is the issued artifact: an opaque blob plus the derived save name.
type Ticket struct {
	Filename string
	Data     []byte
}

type TicketService struct {
	api Binary
}

func NewTicketService(api Binary) *TicketService {
	return &TicketService{api: api}
}

// Download requests the ticket artifact for a paid booking. The paid gate is
// checked here before any network round trip; an unpaid booking yields nil
// without touching the backend. Any transport or HTTP failure also yields
// nil; the caller shows "try again", nothing more granular.
func (s *TicketService) Download(ctx context.Context, booking *domain.Booking) *Ticket {
	if booking == nil || booking.BookingID == "" {
		return nil
	}
	if !booking.Downloadable() {
		log.Printf("ticket download blocked for booking %s: payment status %q", booking.BookingID, booking.PaymentStatus)
		return nil
	}

	data, err := s.api.GetBinary(ctx, "/bookings/"+booking.BookingID+"/download-ticket", "application/pdf")
	if err != nil {
		log.Printf("download ticket for booking %s: %v", booking.BookingID, err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	return &Ticket{
		Filename: booking.TicketFilename(),
		Data:     data,
	}
}
