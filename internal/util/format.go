package util //nolint:revive // package name util hosts shared formatting helpers used by the table printer

import (
	"strconv"
	"strings"
)

// placeholder is rendered for absent values.
const placeholder = "-"

// FormatDollars renders a dollar amount with two decimals, e.g. "$120.00".
func FormatDollars(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatOptionalBool renders a tri-state flag as "yes", "no" or the placeholder.
func FormatOptionalBool(v *bool) string {
	switch {
	case v == nil:
		return placeholder
	case *v:
		return "yes"
	default:
		return "no"
	}
}

// FormatList joins values with ", " and returns the placeholder for an empty list.
func FormatList(values []string) string {
	if len(values) == 0 {
		return placeholder
	}
	return strings.Join(values, ", ")
}

// FormatStay renders a check-in/check-out pair, e.g. "2026-11-01 → 2026-11-03".
func FormatStay(checkIn, checkOut string) string {
	if checkIn == "" && checkOut == "" {
		return placeholder
	}
	return orPlaceholder(checkIn) + " → " + orPlaceholder(checkOut)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
