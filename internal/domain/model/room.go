//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	apperrors "github.com/target/hotel-client/internal/errors"
)

// Amenity is a feature a room can offer (e.g., "wifi").
type Amenity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Room represents a bookable hotel room.
type Room struct {
	ID          int       `json:"id"`
	Number      string    `json:"number"`
	RoomType    string    `json:"room_type"`
	Capacity    int       `json:"capacity"`
	PriceDollar float64   `json:"price_dollar"`
	Amenities   []Amenity `json:"amenities"`
	Available   *bool     `json:"available,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// AmenityNames returns the room's amenity names in backend order.
func (r Room) AmenityNames() []string {
	names := make([]string, 0, len(r.Amenities))
	for _, a := range r.Amenities {
		names = append(names, a.Name)
	}
	return names
}

// CreateRoomRequest represents parameters to create a Room.
// Amenities holds amenity IDs.
type CreateRoomRequest struct {
	Number      string  `json:"number"`
	RoomType    string  `json:"room_type"`
	Capacity    int     `json:"capacity"`
	PriceDollar float64 `json:"price_dollar"`
	Amenities   []int   `json:"amenities,omitempty"`
}

// Validate validates CreateRoomRequest.
func (r *CreateRoomRequest) Validate() error {
	r.Number = strings.TrimSpace(r.Number)
	r.RoomType = strings.TrimSpace(r.RoomType)
	if r.Number == "" {
		return apperrors.ValidationField("number", "number is required")
	}
	if r.RoomType == "" {
		return apperrors.ValidationField("room_type", "room_type is required")
	}
	if r.Capacity <= 0 {
		return apperrors.ValidationField("capacity", "capacity must be > 0")
	}
	if r.PriceDollar < 0 {
		return apperrors.ValidationField("price_dollar", "price_dollar cannot be negative")
	}
	return nil
}

// UpdateRoomRequest represents parameters to update a Room.
type UpdateRoomRequest struct {
	Number      *string  `json:"number,omitempty"`
	RoomType    *string  `json:"room_type,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	PriceDollar *float64 `json:"price_dollar,omitempty"`
	Amenities   []int    `json:"amenities,omitempty"`
}

// Validate validates UpdateRoomRequest.
func (r *UpdateRoomRequest) Validate() error {
	if r.Number == nil && r.RoomType == nil && r.Capacity == nil && r.PriceDollar == nil && r.Amenities == nil {
		return apperrors.Validation("at least one field must be set")
	}
	if r.Capacity != nil && *r.Capacity <= 0 {
		return apperrors.ValidationField("capacity", "capacity must be > 0")
	}
	if r.PriceDollar != nil && *r.PriceDollar < 0 {
		return apperrors.ValidationField("price_dollar", "price_dollar cannot be negative")
	}
	return nil
}

// SearchRoomsParams filters room availability searches.
type SearchRoomsParams struct {
	CheckIn   string
	CheckOut  string
	MaxPrice  *float64
	Amenities []string
}

// Validate validates SearchRoomsParams.
func (p SearchRoomsParams) Validate() error {
	if _, _, err := parseStay(p.CheckIn, p.CheckOut); err != nil {
		return err
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return apperrors.ValidationField("max_price", "max_price cannot be negative")
	}
	return nil
}
