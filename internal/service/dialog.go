package service

import (
	"context"
	"log/slog"
	"sync"

	apperrors "github.com/target/hotel-client/internal/errors"
)

// ErrDialogPending is returned when a dialog is shown while another still awaits a response.
var ErrDialogPending = apperrors.Conflict("a dialog is already awaiting a response")

const (
	defaultConfirmText = "OK"
	defaultCancelText  = "Cancel"
)

// DialogOptions configures a dialog. Empty button texts fall back to "OK" and "Cancel".
type DialogOptions struct {
	Title       string
	Message     string
	ShowCancel  bool
	ConfirmText string
	CancelText  string
}

// DialogState is what the renderer draws.
type DialogState struct {
	Visible     bool
	Title       string
	Message     string
	ShowCancel  bool
	ConfirmText string
	CancelText  string
}

// DialogController tracks at most one modal dialog and delivers its answer over a channel.
// Showing a second dialog while one is pending is rejected with ErrDialogPending.
// It is safe for concurrent use.
type DialogController struct {
	logger *slog.Logger

	mu       sync.Mutex
	state    DialogState
	pending  chan bool
	requests chan DialogState
}

// NewDialogController constructs a DialogController. A nil logger uses slog.Default().
func NewDialogController(logger *slog.Logger) *DialogController {
	if logger == nil {
		logger = slog.Default()
	}
	return &DialogController{
		logger:   logger.With("component", "dialog"),
		requests: make(chan DialogState, 1),
	}
}

// ShowDialog makes the dialog visible and returns a channel that receives exactly one answer:
// true for confirm, false for cancel.
func (c *DialogController) ShowDialog(opts DialogOptions) (<-chan bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.logger.Warn("dialog rejected, another dialog is pending", "title", opts.Title)
		return nil, ErrDialogPending
	}

	c.state = DialogState{
		Visible:     true,
		Title:       opts.Title,
		Message:     opts.Message,
		ShowCancel:  opts.ShowCancel,
		ConfirmText: fallbackString(opts.ConfirmText, defaultConfirmText),
		CancelText:  fallbackString(opts.CancelText, defaultCancelText),
	}
	c.pending = make(chan bool, 1)

	// Replace any state the renderer never picked up; the slot holds only the live dialog.
	select {
	case <-c.requests:
	default:
	}
	c.requests <- c.state

	return c.pending, nil
}

// ShowAlert shows a single-action dialog. Its answer is always true.
func (c *DialogController) ShowAlert(message, title string) (<-chan bool, error) {
	return c.ShowDialog(DialogOptions{
		Title:       title,
		Message:     message,
		ShowCancel:  false,
		ConfirmText: "OK",
	})
}

// ShowConfirm shows a Yes/No dialog.
func (c *DialogController) ShowConfirm(message, title string) (<-chan bool, error) {
	return c.ShowDialog(DialogOptions{
		Title:       title,
		Message:     message,
		ShowCancel:  true,
		ConfirmText: "Yes",
		CancelText:  "No",
	})
}

// HandleConfirm answers the pending dialog with true.
// It reports whether a dialog was pending.
func (c *DialogController) HandleConfirm() bool {
	return c.resolve(true)
}

// HandleCancel answers the pending dialog with false.
// Dismissing an alert acknowledges it, so alerts still answer true.
// It reports whether a dialog was pending.
func (c *DialogController) HandleCancel() bool {
	return c.resolve(false)
}

func (c *DialogController) resolve(answer bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return false
	}
	if !c.state.ShowCancel {
		answer = true
	}
	c.pending <- answer
	c.pending = nil
	c.state.Visible = false
	return true
}

// State returns a snapshot of the current dialog.
func (c *DialogController) State() DialogState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending reports whether a dialog awaits an answer.
func (c *DialogController) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Requests delivers the state of each accepted dialog to the renderer.
func (c *DialogController) Requests() <-chan DialogState {
	return c.requests
}

// Await blocks until answer delivers a value or ctx is done.
// A cancelled wait leaves the dialog pending; resolve it to free the slot.
func Await(ctx context.Context, answer <-chan bool) (bool, error) {
	select {
	case v := <-answer:
		return v, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
