package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/target/hotel-client/internal/domain/model"
	apperrors "github.com/target/hotel-client/internal/errors"
)

func runBook(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "book")

	var req model.CreateBookingRequest
	fs.IntVar(&req.RoomID, "room-id", 0, "Room ID (required)")
	fs.StringVar(&req.CheckIn, "check-in", "", "Check-in date YYYY-MM-DD (required)")
	fs.StringVar(&req.CheckOut, "check-out", "", "Check-out date YYYY-MM-DD (required)")
	fs.StringVar(&req.Guest.FullName, "name", "", "Guest full name (defaults to the logged-in name)")
	fs.StringVar(&req.Guest.Email, "email", "", "Guest email (defaults to the logged-in email)")
	fs.StringVar(&req.Guest.Phone, "phone", "", "Guest phone (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if identity, ok := cc.App.Session.Identity(); ok {
		if strings.TrimSpace(req.Guest.Email) == "" {
			req.Guest.Email = identity.Email
		}
		if strings.TrimSpace(req.Guest.FullName) == "" {
			req.Guest.FullName = identity.Name
		}
	}
	if err := req.Validate(); err != nil {
		return err
	}

	booking, err := cc.App.API.CreateBooking(cc.Ctx, req)
	if err != nil {
		return err
	}
	if err := cc.alert(fmt.Sprintf("Booking #%d created", booking.ID), "Booking"); err != nil {
		return err
	}
	return cc.App.Printer.Print(booking)
}

func runBookings(cc *commandContext, _ []string) error {
	bookings, err := cc.App.API.ListBookings(cc.Ctx)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(bookings)
}

func runBooking(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "booking")
	id := fs.Int("id", 0, "Booking ID (required)")
	if err := parseWithID(fs, args, id); err != nil {
		return err
	}

	booking, err := cc.App.API.GetBooking(cc.Ctx, *id)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(booking)
}

func runBookingUpdate(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "booking-update")
	id := fs.Int("id", 0, "Booking ID (required)")
	status := fs.String("status", "", "New status (PENDING, CONFIRMED, CANCELLED, CHECKED_IN, CHECKED_OUT)")
	checkIn := fs.String("check-in", "", "New check-in date YYYY-MM-DD")
	checkOut := fs.String("check-out", "", "New check-out date YYYY-MM-DD")
	roomID := fs.Int("room-id", 0, "New room ID")
	patch := fs.Bool("patch", false, "Send a partial update (PATCH) instead of a full update (PUT)")

	if err := parseWithID(fs, args, id); err != nil {
		return err
	}

	var req model.UpdateBookingRequest
	var statusErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "status":
			s, ok := model.ParseBookingStatus(*status)
			if !ok {
				statusErr = apperrors.ValidationField("status", fmt.Sprintf("unknown booking status %q", *status))
				return
			}
			req.Status = &s
		case "check-in":
			req.CheckIn = checkIn
		case "check-out":
			req.CheckOut = checkOut
		case "room-id":
			req.RoomID = roomID
		}
	})
	if statusErr != nil {
		return statusErr
	}
	if err := req.Validate(); err != nil {
		return err
	}

	update := cc.App.API.UpdateBooking
	if *patch {
		update = cc.App.API.PatchBooking
	}
	booking, err := update(cc.Ctx, *id, req)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(booking)
}

func runBookingDelete(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "booking-delete")
	id := fs.Int("id", 0, "Booking ID (required)")
	yes := fs.Bool("yes", false, "Skip confirmation prompt")
	if err := parseWithID(fs, args, id); err != nil {
		return err
	}

	if !*yes {
		ok, err := cc.confirm(fmt.Sprintf("Delete booking #%d?", *id), "Delete booking")
		if err != nil {
			return err
		}
		if !ok {
			cc.App.Printer.Message("booking #%d kept", *id)
			return nil
		}
	}

	if err := cc.App.API.DeleteBooking(cc.Ctx, *id); err != nil {
		return err
	}
	cc.App.Printer.Message("booking #%d deleted", *id)
	return nil
}

func runByEmail(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "by-email")
	email := fs.String("email", "", "Guest email (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := model.ValidateEmail(strings.TrimSpace(*email)); err != nil {
		return err
	}

	bookings, err := cc.App.API.BookingsByEmail(cc.Ctx, strings.TrimSpace(*email))
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(bookings)
}

func runOverview(cc *commandContext, _ []string) error {
	overview, err := cc.App.API.StaffOverview(cc.Ctx)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(overview)
}

func runMyBookings(cc *commandContext, _ []string) error {
	bookings, err := cc.App.API.MyBookings(cc.Ctx)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(bookings)
}

func runCancel(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "cancel")
	id := fs.Int("id", 0, "Booking ID (required)")
	yes := fs.Bool("yes", false, "Skip confirmation prompt")
	if err := parseWithID(fs, args, id); err != nil {
		return err
	}

	if !*yes {
		ok, err := cc.confirm(fmt.Sprintf("Cancel booking #%d?", *id), "Cancel booking")
		if err != nil {
			return err
		}
		if !ok {
			cc.App.Printer.Message("booking #%d not cancelled", *id)
			return nil
		}
	}

	booking, err := cc.App.API.CancelBooking(cc.Ctx, *id)
	if err != nil {
		return err
	}
	return cc.App.Printer.Print(booking)
}

func runPay(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "pay")
	id := fs.Int("booking-id", 0, "Booking ID (required)")
	ref := fs.String("ref", "", "Payment provider reference (required)")
	if err := parseWithID(fs, args, id); err != nil {
		return err
	}
	if strings.TrimSpace(*ref) == "" {
		return apperrors.ValidationField("provider_ref", "provider reference is required")
	}

	result, err := cc.App.API.ConfirmPayment(cc.Ctx, *id, strings.TrimSpace(*ref))
	if err != nil {
		return err
	}
	if err := cc.alert(fmt.Sprintf("Payment for booking #%d confirmed", *id), "Payment"); err != nil {
		return err
	}
	return cc.App.Printer.Print(result)
}
