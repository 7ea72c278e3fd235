// Package errors normalizes errors into low-cardinality labels for metrics and logs.
package errors

import (
	"context"
	goerrors "errors"
	"net"
	"reflect"
	"strconv"
	"strings"
)

// statusCoder matches transport errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

// Classify returns a metric-safe label for err:
//   - "http_<status>" for errors carrying an HTTP status
//   - "canceled" or "timeout" for context and network deadline errors
//   - otherwise the innermost concrete type, e.g. "op_error"
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var sc statusCoder
	if goerrors.As(err, &sc) {
		return "http_" + strconv.Itoa(sc.HTTPStatus())
	}
	if goerrors.Is(err, context.Canceled) {
		return "canceled"
	}
	if goerrors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if goerrors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "unknown"
	}
	return toSnake(t.Name())
}

// toSnake converts a Go type name such as OpError to op_error.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
