package rest

// Policy decides whether a path needs an authenticated principal.
type Policy int

const (
	PolicyAuthenticated Policy = iota
	PolicyPublic
)

// RoutePolicy maps request paths to policies. It is filled once at startup and only
// read afterwards. Paths that were never registered require authentication.
type RoutePolicy struct {
	paths map[string]Policy
}

func NewRoutePolicy() *RoutePolicy {
	return &RoutePolicy{paths: make(map[string]Policy)}
}

// Permit marks paths as public.
func (p *RoutePolicy) Permit(paths ...string) *RoutePolicy {
	for _, path := range paths {
		p.paths[path] = PolicyPublic
	}
	return p
}

func (p *RoutePolicy) PolicyFor(path string) Policy {
	if policy, ok := p.paths[path]; ok {
		return policy
	}
	return PolicyAuthenticated
}

// DefaultRoutePolicy lists the login, registration, token, health and static login
// pages. Everything else, including /todo.html, requires a principal.
func DefaultRoutePolicy() *RoutePolicy {
	return NewRoutePolicy().Permit(
		"/login",
		"/logout",
		"/register",
		"/users",
		"/auth/token",
		"/health",
		"/login.html",
		"/register.html",
		"/style.css",
	)
}
