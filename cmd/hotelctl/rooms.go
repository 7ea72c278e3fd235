package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/target/hotel-client/internal/domain/model"
	apperrors "github.com/target/hotel-client/internal/errors"
)

func runRooms(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "rooms")

	var (
		params    model.SearchRoomsParams
		maxPrice  string
		amenities string
	)
	fs.StringVar(&params.CheckIn, "check-in", "", "Check-in date YYYY-MM-DD (required)")
	fs.StringVar(&params.CheckOut, "check-out", "", "Check-out date YYYY-MM-DD (required)")
	fs.StringVar(&maxPrice, "max-price", "", "Optional maximum nightly price")
	fs.StringVar(&amenities, "amenities", "", "Optional comma-separated amenity names")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return apperrors.ValidationField("max_price", "max_price must be a number")
		}
		params.MaxPrice = &v
	}
	params.Amenities = splitList(amenities)
	if err := params.Validate(); err != nil {
		return err
	}

	rooms, err := cc.App.API.SearchRooms(cc.Ctx, params)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(rooms)
}

func runRoom(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "room")
	id := fs.Int("id", 0, "Room ID (required)")
	if err := parseWithID(fs, args, id); err != nil {
		return err
	}

	room, err := cc.App.API.GetRoom(cc.Ctx, *id)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(room)
}

func runRoomCreate(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "room-create")

	var (
		req       model.CreateRoomRequest
		amenities string
	)
	fs.StringVar(&req.Number, "number", "", "Room number (required)")
	fs.StringVar(&req.RoomType, "type", "", "Room type (required)")
	fs.IntVar(&req.Capacity, "capacity", 0, "Guest capacity (required)")
	fs.Float64Var(&req.PriceDollar, "price", 0, "Nightly price in dollars")
	fs.StringVar(&amenities, "amenities", "", "Optional comma-separated amenity IDs")

	if err := fs.Parse(args); err != nil {
		return err
	}
	ids, err := parseIDList("amenities", amenities)
	if err != nil {
		return err
	}
	req.Amenities = ids
	if err := req.Validate(); err != nil {
		return err
	}

	room, err := cc.App.API.CreateRoom(cc.Ctx, req)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(room)
}

func runRoomUpdate(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "room-update")
	id := fs.Int("id", 0, "Room ID (required)")
	number := fs.String("number", "", "New room number")
	roomType := fs.String("type", "", "New room type")
	capacity := fs.Int("capacity", 0, "New guest capacity")
	price := fs.Float64("price", 0, "New nightly price in dollars")
	amenities := fs.String("amenities", "", "Replacement comma-separated amenity IDs")

	if err := parseWithID(fs, args, id); err != nil {
		return err
	}

	var req model.UpdateRoomRequest
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "number":
			req.Number = number
		case "type":
			req.RoomType = roomType
		case "capacity":
			req.Capacity = capacity
		case "price":
			req.PriceDollar = price
		case "amenities":
			ids, err := parseIDList("amenities", *amenities)
			if err != nil {
				parseErr = err
				return
			}
			req.Amenities = ids
		}
	})
	if parseErr != nil {
		return parseErr
	}
	if err := req.Validate(); err != nil {
		return err
	}

	room, err := cc.App.API.UpdateRoom(cc.Ctx, *id, req)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(room)
}

func runRoomDelete(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "room-delete")
	id := fs.Int("id", 0, "Room ID (required)")
	yes := fs.Bool("yes", false, "Skip confirmation prompt")
	if err := parseWithID(fs, args, id); err != nil {
		return err
	}

	if !*yes {
		ok, err := cc.confirm(fmt.Sprintf("Delete room #%d?", *id), "Delete room")
		if err != nil {
			return err
		}
		if !ok {
			cc.App.Printer.Message("room #%d kept", *id)
			return nil
		}
	}

	if err := cc.App.API.DeleteRoom(cc.Ctx, *id); err != nil {
		return err
	}
	cc.App.Printer.Message("room #%d deleted", *id)
	return nil
}

func runAmenities(cc *commandContext, _ []string) error {
	amenities, err := cc.App.API.ListAmenities(cc.Ctx)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(amenities)
}

// parseWithID parses fs and requires a positive id.
func parseWithID(fs *flag.FlagSet, args []string, id *int) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return apperrors.ValidationField("id", "id must be > 0")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIDList(field, raw string) ([]int, error) {
	parts := splitList(raw)
	if len(parts) == 0 {
		return nil, nil
	}
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return nil, apperrors.ValidationField(field, fmt.Sprintf("%q is not a valid id", p))
		}
		ids = append(ids, v)
	}
	return ids, nil
}
