package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/target/hotel-client/config"
	"github.com/target/hotel-client/internal/adapters/hotelapi"
	"github.com/target/hotel-client/internal/observability/statsd"
	"github.com/target/hotel-client/internal/output"
	"github.com/target/hotel-client/internal/ports"
	"github.com/target/hotel-client/internal/service"
)

// AppOptions groups the inputs to BuildApp.
type AppOptions struct {
	Config config.AppConfig
	Logger *slog.Logger
	// Output receives command results; required.
	Output io.Writer
	// Query is an optional JMESPath projection for printed results.
	Query string
	// Store overrides the configured storage backend (tests).
	Store ports.KeyValueStore
	// HTTPClient overrides the API client's transport (tests).
	HTTPClient *http.Client
}

// App holds the wired client components.
type App struct {
	Session *service.SessionStore
	Guard   *service.NavigationGuard
	Dialog  *service.DialogController
	API     *hotelapi.Client
	Printer output.Printer
	Logger  *slog.Logger

	closers []io.Closer
}

// BuildApp wires storage, session, guard, dialog, API client and printer.
func BuildApp(ctx context.Context, opts AppOptions) (*App, error) {
	if opts.Output == nil {
		return nil, errors.New("output writer is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	printer := output.Printer{W: opts.Output, Format: format, Query: opts.Query}
	if err := printer.ValidateQuery(); err != nil {
		return nil, err
	}

	store := opts.Store
	var closer io.Closer = nopCloser{}
	if store == nil {
		store, closer, err = BuildKeyValueStore(ctx, StorageOptions{
			Storage: cfg.Storage,
			Redis:   cfg.Redis,
			Logger:  logger,
		})
		if err != nil {
			return nil, fmt.Errorf("open session storage: %w", err)
		}
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init statsd client: %w", err)
	}

	session := service.NewSessionStore(service.SessionStoreOptions{
		Store:  store,
		Key:    cfg.Storage.Key,
		Logger: logger,
	})

	api, err := hotelapi.NewClient(hotelapi.Config{
		BaseURL:    cfg.API.URL,
		Timeout:    cfg.API.Timeout,
		Client:     opts.HTTPClient,
		Logger:     logger,
		Identities: session,
		Metrics:    metrics,
	})
	if err != nil {
		_ = metrics.Close()
		_ = closer.Close()
		return nil, err
	}

	return &App{
		Session: session,
		Guard:   service.NewNavigationGuard(service.NavigationGuardOptions{Session: session, Logger: logger}),
		Dialog:  service.NewDialogController(logger),
		API:     api,
		Printer: printer,
		Logger:  logger,
		closers: []io.Closer{metrics, closer},
	}, nil
}

// Close releases the metrics socket and storage connections.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
