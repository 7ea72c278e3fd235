// Package output renders command results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/target/hotel-client/internal/domain/model"
	apperrors "github.com/target/hotel-client/internal/errors"
	"github.com/target/hotel-client/internal/util"
)

// Format selects how results are rendered.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat normalizes a format name. Empty selects JSON.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatTable:
		return f, nil
	default:
		return "", apperrors.ValidationField("format", fmt.Sprintf("unsupported output format %q", value))
	}
}

// Printer writes results to W.
type Printer struct {
	W      io.Writer
	Format Format
	// Query is an optional JMESPath expression applied before rendering.
	// A projected result is always rendered as JSON.
	Query string
}

// ValidateQuery reports whether Query compiles.
func (p Printer) ValidateQuery() error {
	if strings.TrimSpace(p.Query) == "" {
		return nil
	}
	if _, err := jmespath.Compile(p.Query); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeValidation, "invalid query %q", p.Query)
	}
	return nil
}

// Print renders v.
func (p Printer) Print(v any) error {
	if strings.TrimSpace(p.Query) != "" {
		projected, err := p.project(v)
		if err != nil {
			return err
		}
		return p.printJSON(projected)
	}
	if p.Format == FormatTable {
		if ok, err := p.printTable(v); ok {
			return err
		}
	}
	return p.printJSON(v)
}

// Message writes one line of plain text.
func (p Printer) Message(format string, args ...any) {
	_, _ = fmt.Fprintf(p.W, format+"\n", args...)
}

func (p Printer) project(v any) (any, error) {
	if err := p.ValidateQuery(); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	out, err := jmespath.Search(p.Query, generic)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeValidation, "evaluate query %q", p.Query)
	}
	return out, nil
}

func (p Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// printTable reports false when v has no tabular form.
func (p Printer) printTable(v any) (bool, error) {
	var rows [][]string
	switch t := v.(type) {
	case []model.Room:
		rows = append(rows, roomHeader)
		for _, r := range t {
			rows = append(rows, roomRow(r))
		}
	case model.Room:
		rows = [][]string{roomHeader, roomRow(t)}
	case []model.Booking:
		rows = append(rows, bookingHeader)
		for _, b := range t {
			rows = append(rows, bookingRow(b))
		}
	case model.Booking:
		rows = [][]string{bookingHeader, bookingRow(t)}
	case []model.Amenity:
		rows = append(rows, []string{"ID", "NAME"})
		for _, a := range t {
			rows = append(rows, []string{strconv.Itoa(a.ID), a.Name})
		}
	default:
		return false, nil
	}

	tw := tabwriter.NewWriter(p.W, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return true, fmt.Errorf("write table: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return true, fmt.Errorf("write table: %w", err)
	}
	return true, nil
}

var (
	roomHeader    = []string{"ID", "NUMBER", "TYPE", "CAPACITY", "PRICE", "AVAILABLE", "AMENITIES"}
	bookingHeader = []string{"ID", "STATUS", "ROOM", "GUEST", "EMAIL", "STAY", "NIGHTS", "TOTAL"}
)

func roomRow(r model.Room) []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Number,
		r.RoomType,
		strconv.Itoa(r.Capacity),
		util.FormatDollars(r.PriceDollar),
		util.FormatOptionalBool(r.Available),
		util.FormatList(r.AmenityNames()),
	}
}

func bookingRow(b model.Booking) []string {
	room := b.Room.Number
	if room == "" {
		room = "-"
	}
	return []string{
		strconv.Itoa(b.ID),
		string(b.Status),
		room,
		b.Guest.FullName,
		b.Guest.Email,
		util.FormatStay(b.CheckIn, b.CheckOut),
		strconv.Itoa(b.Nights()),
		util.FormatDollars(b.TotalDollar),
	}
}
