package main

import (
	"errors"
	"io"
	"strings"

	"github.com/target/hotel-client/internal/service"
)

// confirm shows a yes/no dialog and answers it from stdin.
// Anything but y/yes, including end of input, declines.
func (cc *commandContext) confirm(message, title string) (bool, error) {
	answer, err := cc.App.Dialog.ShowConfirm(message, title)
	if err != nil {
		return false, err
	}
	cc.respond()
	return service.Await(cc.Ctx, answer)
}

// alert shows an informational dialog. Alerts have a single action and are
// acknowledged without waiting for input.
func (cc *commandContext) alert(message, title string) error {
	answer, err := cc.App.Dialog.ShowAlert(message, title)
	if err != nil {
		return err
	}
	cc.respond()
	_, err = service.Await(cc.Ctx, answer)
	return err
}

// respond renders the queued dialog on stderr and resolves it.
func (cc *commandContext) respond() {
	var state service.DialogState
	select {
	case state = <-cc.App.Dialog.Requests():
	default:
		state = cc.App.Dialog.State()
	}

	title := ""
	if state.Title != "" {
		title = "[" + state.Title + "] "
	}

	if !state.ShowCancel {
		_ = writef(cc.Stderr, "%s%s\n", title, state.Message)
		cc.App.Dialog.HandleConfirm()
		return
	}

	_ = writef(cc.Stderr, "%s%s [%s/%s]: ", title, state.Message, state.ConfirmText, state.CancelText)
	line, err := cc.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		cc.Logger.Warn("read dialog answer failed", "error", err)
	}
	if isYes(line) {
		cc.App.Dialog.HandleConfirm()
		return
	}
	cc.App.Dialog.HandleCancel()
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
