package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStatusError struct{ code int }

func (e *fakeStatusError) Error() string   { return "status" }
func (e *fakeStatusError) HTTPStatus() int { return e.code }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"status", fmt.Errorf("wrapped: %w", &fakeStatusError{code: 503}), "http_503"},
		{"canceled", fmt.Errorf("GET /rooms: %w", context.Canceled), "canceled"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"url error", &url.Error{Op: "Get", URL: "http://x", Err: goerrors.New("refused")}, "error_string"},
		{"plain", goerrors.New("boom"), "error_string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "op_error", toSnake("OpError"))
	assert.Equal(t, "status_error", toSnake("StatusError"))
	assert.Equal(t, "plain", toSnake("plain"))
}
