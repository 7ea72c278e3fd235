// Command hotelctl is a terminal front end for the hotel reservation backend.
// Every command first navigates to its view through the navigation guard, so
// the same role rules apply as in the web client.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/target/hotel-client/internal/bootstrap"
	"github.com/target/hotel-client/internal/domain/route"
	apperrors "github.com/target/hotel-client/internal/errors"
)

type commandFn func(cc *commandContext, args []string) error

type command struct {
	name        string
	description string
	// route is navigated before run; empty skips the guard.
	route string
	run   commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	App    *bootstrap.App
	Stderr io.Writer

	stdin *bufio.Reader
}

// stdio bundles the streams a run uses so tests can capture them.
type stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitRedirect = 3
)

// redirectError reports that the guard turned a navigation away.
type redirectError struct {
	From string
	To   string
}

func (e *redirectError) Error() string {
	return fmt.Sprintf("navigation to %s redirected to %s", e.From, e.To)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code) //nolint:forbidigo // CLI must propagate its exit status to the shell
}

func run(ctx context.Context, args []string, std stdio) int {
	global := flag.NewFlagSet("hotelctl", flag.ContinueOnError)
	global.SetOutput(std.Err)
	query := global.String("query", "", "JMESPath expression applied to command output")
	format := global.String("o", "", "Output format: json or table (overrides OUTPUT_FORMAT)")
	global.Usage = func() { _ = printUsage(std.Err) }

	if err := global.Parse(args); err != nil {
		return exitUsage
	}
	rest := global.Args()
	if len(rest) == 0 {
		_ = printUsage(std.Err)
		return exitUsage
	}

	cmdName := rest[0]
	cmd, ok := commands()[cmdName]
	if !ok {
		_ = writef(std.Err, "unknown command %q\n\n", cmdName)
		_ = printUsage(std.Err)
		return exitUsage
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		_ = writef(std.Err, "error: %v\n", err)
		return exitFailure
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	logger := bootstrap.InitLogger(std.Err, cfg)

	app, err := bootstrap.BuildApp(ctx, bootstrap.AppOptions{
		Config: cfg,
		Logger: logger,
		Output: std.Out,
		Query:  *query,
	})
	if err != nil {
		logger.ErrorContext(ctx, "build app", "error", err)
		_ = writef(std.Err, "error: %v\n", err)
		return exitFailure
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("close app failed", "error", closeErr)
		}
	}()

	cc := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		App:    app,
		Stderr: std.Err,
		stdin:  bufio.NewReader(std.In),
	}
	return cc.exitCode(cmdName, execute(cc, cmd, rest[1:]))
}

func execute(cc *commandContext, cmd command, args []string) error {
	if cmd.route != "" {
		if err := cc.navigate(cmd.route); err != nil {
			return err
		}
	}
	return cmd.run(cc, args)
}

// navigate asks the guard for path and fails with a redirectError when turned away.
func (cc *commandContext) navigate(path string) error {
	d := cc.App.Guard.Resolve(cc.Ctx, path)
	if d.Allowed {
		return nil
	}
	return &redirectError{From: path, To: d.Redirect}
}

func (cc *commandContext) exitCode(cmdName string, err error) int {
	if err == nil {
		return exitOK
	}
	var redirect *redirectError
	if errors.As(err, &redirect) {
		_ = writef(cc.Stderr, "redirected to %s\n", redirect.To)
		return exitRedirect
	}
	if errors.Is(err, flag.ErrHelp) {
		return exitUsage
	}
	cc.Logger.ErrorContext(cc.Ctx, "command failed", "command", cmdName, "error", err)
	_ = writef(cc.Stderr, "error: %v\n", err)
	if apperrors.IsUnauthenticated(err) {
		_ = writef(cc.Stderr, "hint: run 'hotelctl login' first\n")
	}
	return exitFailure
}

func commands() map[string]command {
	list := []command{
		{name: "login", description: "Start a session for an identity", run: runLogin},
		{name: "logout", description: "End the current session", run: runLogout},
		{name: "whoami", description: "Show the logged-in identity", route: route.PathHome, run: runWhoAmI},
		{name: "navigate", description: "Resolve a view path through the navigation guard", run: runNavigate},
		{name: "rooms", description: "Search available rooms", route: route.PathHome, run: runRooms},
		{name: "room", description: "Show one room", route: route.PathHome, run: runRoom},
		{name: "room-create", description: "Create a room", route: route.PathStaff, run: runRoomCreate},
		{name: "room-update", description: "Update a room", route: route.PathStaff, run: runRoomUpdate},
		{name: "room-delete", description: "Delete a room", route: route.PathStaff, run: runRoomDelete},
		{name: "amenities", description: "List room amenities", route: route.PathHome, run: runAmenities},
		{name: "book", description: "Book a room", route: route.PathHome, run: runBook},
		{name: "bookings", description: "List all bookings", route: route.PathStaff, run: runBookings},
		{name: "booking", description: "Show one booking", route: route.PathStaff, run: runBooking},
		{name: "booking-update", description: "Update a booking", route: route.PathStaff, run: runBookingUpdate},
		{name: "booking-delete", description: "Delete a booking", route: route.PathStaff, run: runBookingDelete},
		{name: "by-email", description: "List the bookings of a guest email", route: route.PathStaff, run: runByEmail},
		{name: "overview", description: "Show bookings and amenities for staff", route: route.PathStaff, run: runOverview},
		{name: "my-bookings", description: "List your bookings", route: route.PathMyBookings, run: runMyBookings},
		{name: "cancel", description: "Cancel one of your bookings", route: route.PathMyBookings, run: runCancel},
		{name: "pay", description: "Confirm a payment for one of your bookings", route: route.PathMyBookings, run: runPay},
	}
	out := make(map[string]command, len(list))
	for _, c := range list {
		out[c.name] = c
	}
	return out
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: hotelctl [-query EXPR] [-o json|table] <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-16s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
