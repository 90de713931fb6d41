package normalize

import (
	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
)

// Candidate raw keys per canonical booking field, highest priority first.
// The backend has shipped snake_case, camelCase and legacy aliases for the
// same fields; precedence here is the contract (booking_status beats status,
// booking_total_price beats total_price).
var (
	bookingIDKeys       = []string{"booking_id", "bookingId", "id"}
	bookingUserKeys     = []string{"user_id", "userId", "user"}
	bookingPackageKeys  = []string{"package_id", "packageId", "paket_id"}
	bookingCodeKeys     = []string{"booking_code", "bookingCode", "code"}
	participantsKeys    = []string{"total_participants", "totalParticipants", "participants", "pax"}
	departureKeys       = []string{"departure_date", "departureDate", "departure"}
	returnKeys          = []string{"return_date", "returnDate"}
	priceKeys           = []string{"booking_total_price", "total_price", "totalPrice", "price"}
	statusKeys          = []string{"booking_status", "status"}
	paymentStatusKeys   = []string{"payment_status", "paymentStatus"}
	paymentDeadlineKeys = []string{"payment_deadline", "paymentDeadline", "deadline"}
	fullNameKeys        = []string{"fullname", "full_name", "fullName", "name"}
	phoneKeys           = []string{"phone", "phone_number", "phoneNumber"}
	emailKeys           = []string{"email"}
	passportNumberKeys  = []string{"passport_number", "passportNumber", "no_passport"}
	passportExpiryKeys  = []string{"passport_expiry", "passportExpiry", "passport_expired_date"}
	nationalityKeys     = []string{"nationality"}

	snapshotNameKeys      = []string{"package_name", "packageName", "title"}
	snapshotImageKeys     = []string{"package_image", "packageImage", "image", "thumbnail"}
	snapshotLocationKeys  = []string{"location", "city"}
	snapshotContinentKeys = []string{"continent", "region"}
	snapshotAirlineKeys   = []string{"airline", "flight"}
	snapshotAirportKeys   = []string{"airport", "departure_airport"}
	snapshotPeriodKeys    = []string{"period", "duration"}

	specialRequestKeys = []string{"special_request", "specialRequest", "notes"}
	paymentMethodKeys  = []string{"payment_method", "paymentMethod"}
)

// Booking maps a raw backend booking object onto the canonical shape.
// Missing status defaults to pending, missing payment status to unpaid,
// missing participant count to 1; the package snapshot falls back to a
// nested package object when the flat aliases are absent.
func Booking(raw interface{}) domain.Booking {
	obj := asObject(raw)
	if obj == nil {
		obj = map[string]interface{}{}
	}

	b := domain.Booking{
		BookingID:         pickStr(obj, bookingIDKeys...),
		UserID:            pickStr(obj, bookingUserKeys...),
		PackageID:         pickStr(obj, bookingPackageKeys...),
		BookingCode:       pickStr(obj, bookingCodeKeys...),
		TotalParticipants: pickInt(obj, participantsKeys...),
		DepartureDate:     pickStr(obj, departureKeys...),
		ReturnDate:        pickStr(obj, returnKeys...),
		TotalPrice:        pickStrDefault(obj, "0", priceKeys...),
		Status:            domain.BookingStatus(pickStrDefault(obj, string(domain.BookingStatusPending), statusKeys...)),
		PaymentStatus:     domain.PaymentStatus(pickStrDefault(obj, string(domain.PaymentStatusUnpaid), paymentStatusKeys...)),
		PaymentDeadline:   pickStr(obj, paymentDeadlineKeys...),
		FullName:          pickStr(obj, fullNameKeys...),
		Phone:             pickStr(obj, phoneKeys...),
		Email:             pickStr(obj, emailKeys...),
		PassportNumber:    pickStr(obj, passportNumberKeys...),
		PassportExpiry:    pickStr(obj, passportExpiryKeys...),
		Nationality:       pickStr(obj, nationalityKeys...),
	}
	if b.TotalParticipants < 1 {
		b.TotalParticipants = 1
	}

	snapshot := obj
	if nested := pickObj(obj, "package", "paket"); nested != nil {
		// Some endpoints join the package server-side, others nest it.
		snapshot = merged(obj, nested)
	}
	b.PackageName = pickStr(snapshot, snapshotNameKeys...)
	b.PackageImage = pickStr(snapshot, snapshotImageKeys...)
	b.Location = pickStr(snapshot, snapshotLocationKeys...)
	b.Continent = pickStr(snapshot, snapshotContinentKeys...)
	b.Airline = pickStr(snapshot, snapshotAirlineKeys...)
	b.Airport = pickStr(snapshot, snapshotAirportKeys...)
	b.Period = pickStr(snapshot, snapshotPeriodKeys...)

	return b
}

// Bookings maps a raw list, skipping nothing: non-object rows normalize to
// an all-defaults booking rather than dropping silently.
func Bookings(raw []interface{}) []domain.Booking {
	out := make([]domain.Booking, 0, len(raw))
	for _, item := range raw {
		out = append(out, Booking(item))
	}
	return out
}

// Order maps a raw admin order row: the booking fields plus admin-only ones.
func Order(raw interface{}) domain.Order {
	obj := asObject(raw)
	if obj == nil {
		obj = map[string]interface{}{}
	}
	return domain.Order{
		Booking:        Booking(obj),
		SpecialRequest: pickStr(obj, specialRequestKeys...),
		PaymentMethod:  pickStr(obj, paymentMethodKeys...),
	}
}

func Orders(raw []interface{}) []domain.Order {
	out := make([]domain.Order, 0, len(raw))
	for _, item := range raw {
		out = append(out, Order(item))
	}
	return out
}

// merged overlays flat fields over the nested package object; flat wins.
func merged(flat, nested map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(flat)+len(nested))
	for k, v := range nested {
		out[k] = v
	}
	for k, v := range flat {
		out[k] = v
	}
	return out
}
