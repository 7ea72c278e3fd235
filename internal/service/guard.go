package service

import (
	"context"
	"log/slog"
	"sync"

	domainauth "github.com/target/hotel-client/internal/domain/auth"
	"github.com/target/hotel-client/internal/domain/route"
)

// SessionReader is the subset of SessionStore the guard depends on.
type SessionReader interface {
	InitAuth(ctx context.Context)
	IsLoggedIn() bool
	Identity() (domainauth.Identity, bool)
}

// Decision is the outcome of evaluating a navigation attempt.
// Exactly one of Allowed or Redirect is set.
type Decision struct {
	Allowed  bool
	Redirect string
	// Route is the requested target. For paths outside the table only Path is set.
	Route route.Route
}

// Allow reports an unchanged navigation.
func Allow(r route.Route) Decision { return Decision{Allowed: true, Route: r} }

// RedirectTo reports a navigation rewritten to path.
func RedirectTo(path string, target route.Route) Decision {
	return Decision{Redirect: path, Route: target}
}

// NavigationGuardOptions groups dependencies for NavigationGuard.
type NavigationGuardOptions struct {
	Session SessionReader
	Routes  route.Table  // defaults to route.Default()
	Logger  *slog.Logger // defaults to slog.Default()
}

// NavigationGuard enforces route policies before a view transition completes.
// Apart from the one-time lazy session recovery it holds no state and never mutates the session.
type NavigationGuard struct {
	session  SessionReader
	routes   route.Table
	logger   *slog.Logger
	initOnce sync.Once
}

// NewNavigationGuard constructs a NavigationGuard.
func NewNavigationGuard(opts NavigationGuardOptions) *NavigationGuard {
	routes := opts.Routes
	if routes.Len() == 0 {
		routes = route.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &NavigationGuard{
		session: opts.Session,
		routes:  routes,
		logger:  logger.With("component", "navigation_guard"),
	}
}

// Routes returns the route table the guard evaluates against.
func (g *NavigationGuard) Routes() route.Table { return g.routes }

// Resolve evaluates a navigation to path. The first matching rule decides:
//  1. on the first call, recover a persisted session if none is active
//  2. protected route without a session: redirect to login
//  3. protected route with the wrong role: redirect to the role's landing view
//  4. login while already signed in: redirect to the role's landing view
//  5. otherwise allow
//
// Paths missing from the table carry no policy and are allowed.
func (g *NavigationGuard) Resolve(ctx context.Context, path string) Decision {
	g.initOnce.Do(func() {
		if !g.session.IsLoggedIn() {
			g.session.InitAuth(ctx)
		}
	})

	target, known := g.routes.Lookup(path)
	if !known {
		target = route.Route{Path: path, Policy: route.Public()}
	}

	identity, active := g.session.Identity()

	if required, protected := target.Policy.Role(); protected {
		if !active {
			g.logger.DebugContext(ctx, "navigation requires login", "path", path)
			return RedirectTo(route.PathLogin, target)
		}
		if identity.Type != required {
			dest := route.DefaultPathFor(identity.Type)
			g.logger.DebugContext(ctx, "navigation role mismatch",
				"path", path, "required", required, "role", identity.Type, "redirect", dest)
			return RedirectTo(dest, target)
		}
	}

	if target.Path == route.PathLogin && active {
		return RedirectTo(route.DefaultPathFor(identity.Type), target)
	}

	return Allow(target)
}

// Navigate resolves path and follows redirects until a route is allowed.
// Redirect chains are bounded by the size of the route table.
func (g *NavigationGuard) Navigate(ctx context.Context, path string) Decision {
	d := g.Resolve(ctx, path)
	for hops := 0; !d.Allowed && hops <= g.routes.Len(); hops++ {
		d = g.Resolve(ctx, d.Redirect)
	}
	return d
}
