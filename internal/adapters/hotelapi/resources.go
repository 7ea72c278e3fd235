package hotelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/target/hotel-client/internal/domain/model"
	apperrors "github.com/target/hotel-client/internal/errors"
)

// SearchRooms lists rooms available for the stay. Amenity names are sent comma-joined.
func (c *Client) SearchRooms(ctx context.Context, params model.SearchRoomsParams) ([]model.Room, error) {
	q := url.Values{}
	q.Set("check_in", params.CheckIn)
	q.Set("check_out", params.CheckOut)
	if params.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*params.MaxPrice, 'f', -1, 64))
	}
	if len(params.Amenities) > 0 {
		q.Set("amenities", strings.Join(params.Amenities, ","))
	}

	var rooms []model.Room
	if err := c.get(ctx, "/rooms", q, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom creates a room.
func (c *Client) CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error) {
	var room model.Room
	err := c.do(ctx, http.MethodPost, "/rooms", nil, req, &room)
	return room, err
}

// GetRoom fetches one room.
func (c *Client) GetRoom(ctx context.Context, id int) (model.Room, error) {
	var room model.Room
	err := c.get(ctx, roomPath(id), nil, &room)
	return room, err
}

// UpdateRoom replaces the writable fields of a room.
func (c *Client) UpdateRoom(ctx context.Context, id int, req model.UpdateRoomRequest) (model.Room, error) {
	var room model.Room
	err := c.do(ctx, http.MethodPut, roomPath(id), nil, req, &room)
	return room, err
}

// DeleteRoom deletes a room.
func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, roomPath(id), nil, nil, nil)
}

// ListAmenities lists every amenity a room can offer.
func (c *Client) ListAmenities(ctx context.Context) ([]model.Amenity, error) {
	var amenities []model.Amenity
	if err := c.get(ctx, "/amenities", nil, &amenities); err != nil {
		return nil, err
	}
	return amenities, nil
}

// CreateBooking books a room for a guest.
func (c *Client) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	var booking model.Booking
	err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &booking)
	return booking, err
}

// ListBookings lists all bookings.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches one booking.
func (c *Client) GetBooking(ctx context.Context, id int) (model.Booking, error) {
	var booking model.Booking
	err := c.get(ctx, bookingPath(id), nil, &booking)
	return booking, err
}

// UpdateBooking sends a full update of a booking.
func (c *Client) UpdateBooking(ctx context.Context, id int, req model.UpdateBookingRequest) (model.Booking, error) {
	var booking model.Booking
	err := c.do(ctx, http.MethodPut, bookingPath(id), nil, req, &booking)
	return booking, err
}

// PatchBooking sends a partial update of a booking.
func (c *Client) PatchBooking(ctx context.Context, id int, req model.UpdateBookingRequest) (model.Booking, error) {
	var booking model.Booking
	err := c.do(ctx, http.MethodPatch, bookingPath(id), nil, req, &booking)
	return booking, err
}

// CancelBooking marks a booking cancelled.
func (c *Client) CancelBooking(ctx context.Context, id int) (model.Booking, error) {
	status := model.BookingStatusCancelled
	return c.PatchBooking(ctx, id, model.UpdateBookingRequest{Status: &status})
}

// DeleteBooking deletes a booking.
func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, bookingPath(id), nil, nil, nil)
}

// BookingsByEmail looks up the bookings of a guest.
func (c *Client) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	q := url.Values{}
	q.Set("email", email)

	var bookings []model.Booking
	if err := c.get(ctx, "/bookings/by_email", q, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// MyBookings looks up the bookings of the logged-in user.
// It fails before any request when no persisted identity with an email exists.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	if c.identities == nil {
		return nil, apperrors.Unauthenticated("no logged-in user")
	}
	identity, err := c.identities.PersistedIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(identity.Email) == "" {
		return nil, apperrors.Unauthenticated("logged-in user has no email")
	}

	q := url.Values{}
	q.Set("email", identity.Email)

	var bookings []model.Booking
	if err := c.get(ctx, "/bookings/my_bookings", q, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// PaymentResult is the backend's answer to a payment confirmation.
type PaymentResult map[string]any

// ConfirmPayment confirms a provider payment reference against a booking.
func (c *Client) ConfirmPayment(ctx context.Context, bookingID int, providerRef string) (PaymentResult, error) {
	body := model.PaymentConfirmation{
		BookingID:   bookingID,
		ProviderRef: providerRef,
		Success:     true,
	}
	var result PaymentResult
	if err := c.do(ctx, http.MethodPost, "/payments/confirm", nil, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StaffOverview is the data behind the staff landing view.
type StaffOverview struct {
	Bookings  []model.Booking `json:"bookings"`
	Amenities []model.Amenity `json:"amenities"`
}

// StaffOverview fetches bookings and amenities concurrently.
// The first failure cancels the other request and is returned.
func (c *Client) StaffOverview(ctx context.Context) (StaffOverview, error) {
	var overview StaffOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bookings, err := c.ListBookings(gctx)
		overview.Bookings = bookings
		return err
	})

	g.Go(func() error {
		amenities, err := c.ListAmenities(gctx)
		overview.Amenities = amenities
		return err
	})

	if err := g.Wait(); err != nil {
		return StaffOverview{}, err
	}
	return overview, nil
}

func roomPath(id int) string    { return fmt.Sprintf("/rooms/%d", id) }
func bookingPath(id int) string { return fmt.Sprintf("/bookings/%d", id) }
