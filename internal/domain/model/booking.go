//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/target/hotel-client/internal/errors"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
)

// Valid reports whether the booking status is supported.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled,
		BookingStatusCheckedIn, BookingStatusCheckedOut:
		return true
	default:
		return false
	}
}

// ParseBookingStatus normalizes a status string and reports whether it is supported.
func ParseBookingStatus(value string) (BookingStatus, bool) {
	s := BookingStatus(strings.ToUpper(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Guest is the person a booking is made for.
type Guest struct {
	ID       *int   `json:"id,omitempty"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Booking represents a room reservation.
type Booking struct {
	ID          int           `json:"id"`
	Guest       Guest         `json:"guest"`
	Room        Room          `json:"room"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	TotalDollar float64       `json:"total_dollar"`
	Status      BookingStatus `json:"status"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// Nights returns the length of the stay, or 0 when the dates do not parse.
func (b Booking) Nights() int {
	in, out, err := parseStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// BookingGuest carries guest details for a new booking.
type BookingGuest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreateBookingRequest represents parameters to create a Booking.
type CreateBookingRequest struct {
	Guest    BookingGuest `json:"guest"`
	RoomID   int          `json:"room_id"`
	CheckIn  string       `json:"check_in"`
	CheckOut string       `json:"check_out"`
}

// Validate validates CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	r.Guest.FullName = strings.TrimSpace(r.Guest.FullName)
	r.Guest.Email = strings.TrimSpace(r.Guest.Email)
	r.Guest.Phone = strings.TrimSpace(r.Guest.Phone)
	if r.Guest.FullName == "" {
		return apperrors.ValidationField("guest.full_name", "guest full_name is required")
	}
	if err := ValidateEmail(r.Guest.Email); err != nil {
		return err
	}
	if r.Guest.Phone == "" {
		return apperrors.ValidationField("guest.phone", "guest phone is required")
	}
	if r.RoomID <= 0 {
		return apperrors.ValidationField("room_id", "room_id must be > 0")
	}
	_, _, err := parseStay(r.CheckIn, r.CheckOut)
	return err
}

// UpdateBookingRequest represents parameters to update a Booking.
type UpdateBookingRequest struct {
	Status   *BookingStatus `json:"status,omitempty"`
	CheckIn  *string        `json:"check_in,omitempty"`
	CheckOut *string        `json:"check_out,omitempty"`
	RoomID   *int           `json:"room_id,omitempty"`
}

// Validate validates UpdateBookingRequest.
func (r *UpdateBookingRequest) Validate() error {
	if r.Status == nil && r.CheckIn == nil && r.CheckOut == nil && r.RoomID == nil {
		return apperrors.Validation("at least one field must be set")
	}
	if r.Status != nil && !r.Status.Valid() {
		return apperrors.ValidationField("status", "status is not a known booking status")
	}
	if r.RoomID != nil && *r.RoomID <= 0 {
		return apperrors.ValidationField("room_id", "room_id must be > 0")
	}
	if r.CheckIn != nil && r.CheckOut != nil {
		if _, _, err := parseStay(*r.CheckIn, *r.CheckOut); err != nil {
			return err
		}
	}
	return nil
}

// PaymentConfirmation confirms a provider payment reference against a booking.
type PaymentConfirmation struct {
	BookingID   int    `json:"booking_id"`
	ProviderRef string `json:"provider_ref"`
	Success     bool   `json:"success"`
}

// ValidateEmail checks that s is a bare email address.
func ValidateEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return apperrors.ValidationField("email", "email is not a valid address")
	}
	return nil
}

func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ValidationField("check_in", "check_in must be YYYY-MM-DD")
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ValidationField("check_out", "check_out must be YYYY-MM-DD")
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, apperrors.ValidationField("check_out", "check_out must be after check_in")
	}
	return in, out, nil
}
