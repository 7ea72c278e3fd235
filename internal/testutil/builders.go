// Package testutil provides testing utilities and fixtures for the hotel client.
package testutil

import (
	domainauth "github.com/target/hotel-client/internal/domain/auth"
	"github.com/target/hotel-client/internal/domain/model"
)

// GuestIdentity returns a valid guest identity.
func GuestIdentity() domainauth.Identity {
	return domainauth.Identity{Email: "guest@example.com", Name: "Grace Guest", Type: domainauth.RoleGuest}
}

// StaffIdentity returns a valid staff identity.
func StaffIdentity() domainauth.Identity {
	return domainauth.Identity{Email: "staff@example.com", Name: "Sam Staff", Type: domainauth.RoleStaff}
}

// RoomBuilder provides a fluent interface for building Room fixtures.
type RoomBuilder struct {
	room model.Room
}

// NewRoom creates a RoomBuilder with sensible defaults.
func NewRoom() *RoomBuilder {
	return &RoomBuilder{
		room: model.Room{
			ID:          1,
			Number:      "101",
			RoomType:    "double",
			Capacity:    2,
			PriceDollar: 120,
		},
	}
}

// WithID sets the room ID.
func (b *RoomBuilder) WithID(id int) *RoomBuilder {
	b.room.ID = id
	return b
}

// WithNumber sets the room number.
func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.room.Number = number
	return b
}

// WithType sets the room type.
func (b *RoomBuilder) WithType(roomType string) *RoomBuilder {
	b.room.RoomType = roomType
	return b
}

// WithCapacity sets the capacity.
func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.room.Capacity = capacity
	return b
}

// WithPrice sets the nightly price.
func (b *RoomBuilder) WithPrice(price float64) *RoomBuilder {
	b.room.PriceDollar = price
	return b
}

// WithAvailable sets the availability flag.
func (b *RoomBuilder) WithAvailable(available bool) *RoomBuilder {
	b.room.Available = BoolPtr(available)
	return b
}

// WithAmenities appends amenities, numbering them in order.
func (b *RoomBuilder) WithAmenities(names ...string) *RoomBuilder {
	for _, name := range names {
		b.room.Amenities = append(b.room.Amenities, model.Amenity{ID: len(b.room.Amenities) + 1, Name: name})
	}
	return b
}

// Build returns the room.
func (b *RoomBuilder) Build() model.Room {
	return b.room
}

// BookingBuilder provides a fluent interface for building Booking fixtures.
type BookingBuilder struct {
	booking model.Booking
}

// NewBooking creates a BookingBuilder with sensible defaults.
func NewBooking() *BookingBuilder {
	guest := GuestIdentity()
	return &BookingBuilder{
		booking: model.Booking{
			ID:          1,
			Guest:       model.Guest{FullName: guest.Name, Email: guest.Email, Phone: "555-0100"},
			Room:        NewRoom().Build(),
			CheckIn:     "2026-11-01",
			CheckOut:    "2026-11-03",
			TotalDollar: 240,
			Status:      model.BookingStatusPending,
		},
	}
}

// WithID sets the booking ID.
func (b *BookingBuilder) WithID(id int) *BookingBuilder {
	b.booking.ID = id
	return b
}

// WithStatus sets the booking status.
func (b *BookingBuilder) WithStatus(status model.BookingStatus) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithGuest sets the guest name and email.
func (b *BookingBuilder) WithGuest(name, email string) *BookingBuilder {
	b.booking.Guest.FullName = name
	b.booking.Guest.Email = email
	return b
}

// WithRoom sets the booked room.
func (b *BookingBuilder) WithRoom(room model.Room) *BookingBuilder {
	b.booking.Room = room
	return b
}

// WithStay sets the check-in and check-out dates.
func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	return b
}

// WithTotal sets the total price.
func (b *BookingBuilder) WithTotal(total float64) *BookingBuilder {
	b.booking.TotalDollar = total
	return b
}

// Build returns the booking.
func (b *BookingBuilder) Build() model.Booking {
	return b.booking
}
