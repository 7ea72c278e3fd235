// Package route declares the client's views and the authorization policy attached to each one.
package route

import domainauth "github.com/target/hotel-client/internal/domain/auth"

// Paths of the built-in views.
const (
	PathLogin      = "/login"
	PathHome       = "/"
	PathMyBookings = "/my-bookings"
	PathStaff      = "/staff"
)

// Names of the built-in views.
const (
	NameLogin         = "login"
	NameHome          = "home"
	NameGuestBookings = "guest-bookings"
	NameStaff         = "staff"
)

// Policy is the authorization requirement of a route.
// The zero value is a public policy.
type Policy struct {
	role domainauth.Role
}

// Public returns a policy that admits everyone.
func Public() Policy { return Policy{} }

// RequiresRole returns a policy that admits only authenticated identities holding role.
func RequiresRole(role domainauth.Role) Policy { return Policy{role: role} }

// IsPublic reports whether the policy admits unauthenticated callers.
func (p Policy) IsPublic() bool { return p.role == "" }

// Role returns the required role and whether one is required.
func (p Policy) Role() (domainauth.Role, bool) {
	return p.role, p.role != ""
}

// Allows reports whether an identity with the given role satisfies the policy.
func (p Policy) Allows(role domainauth.Role) bool {
	return p.IsPublic() || p.role == role
}

func (p Policy) String() string {
	if p.IsPublic() {
		return "public"
	}
	return "requires-role(" + string(p.role) + ")"
}

// Route is a navigable view.
type Route struct {
	Name   string
	Path   string
	Policy Policy
}

// Table is an immutable set of routes indexed by path and name.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewTable builds a table. Later duplicates of a path or name are ignored.
func NewTable(routes ...Route) Table {
	t := Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}
	for _, r := range routes {
		if _, dup := t.byPath[r.Path]; dup {
			continue
		}
		if _, dup := t.byName[r.Name]; dup {
			continue
		}
		t.byPath[r.Path] = len(t.routes)
		t.byName[r.Name] = len(t.routes)
		t.routes = append(t.routes, r)
	}
	return t
}

// Default returns the client's built-in route table.
func Default() Table {
	return NewTable(
		Route{Name: NameLogin, Path: PathLogin, Policy: Public()},
		Route{Name: NameHome, Path: PathHome, Policy: Public()},
		Route{Name: NameGuestBookings, Path: PathMyBookings, Policy: RequiresRole(domainauth.RoleGuest)},
		Route{Name: NameStaff, Path: PathStaff, Policy: RequiresRole(domainauth.RoleStaff)},
	)
}

// Lookup finds a route by path.
func (t Table) Lookup(path string) (Route, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// ByName finds a route by name.
func (t Table) ByName(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns a copy of all routes in declaration order.
func (t Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Len returns the number of routes.
func (t Table) Len() int { return len(t.routes) }

// DefaultPathFor returns the landing view for a role.
// Staff land on the staff view; everyone else on their bookings.
func DefaultPathFor(role domainauth.Role) string {
	if role == domainauth.RoleStaff {
		return PathStaff
	}
	return PathMyBookings
}
