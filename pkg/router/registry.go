package router

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Resolver turns a route name and its parameters into a URL. Template helpers
// only depend on this contract, so any router able to reverse named routes
// can back them.
type Resolver interface {
	URLFor(name string, params map[string]string) (*url.URL, error)
}

// Route is a named, parameterized URL pattern.
type Route struct {
	Name    string
	Method  string
	Pattern string

	segments []segment
}

// NewRoute parses pattern and returns a route ready to build URLs.
func NewRoute(name, method, pattern string) (*Route, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("router: route name is required")
	}
	segments, err := parsePattern(strings.TrimSpace(pattern))
	if err != nil {
		return nil, err
	}
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
	}
	return &Route{
		Name:     name,
		Method:   method,
		Pattern:  strings.TrimSpace(pattern),
		segments: segments,
	}, nil
}

// Params lists the placeholder names declared by the pattern, in order.
func (r *Route) Params() []string {
	var names []string
	for _, seg := range r.segments {
		if seg.kind != segmentStatic {
			names = append(names, seg.name)
		}
	}
	return names
}

// URL builds the route path from params. Every declared placeholder except
// the catch-all must be present and non-empty, and no undeclared keys are
// accepted. The result only ever carries a path, never a host.
func (r *Route) URL(params map[string]string) (*url.URL, error) {
	escaped, err := buildPath(r.Name, r.segments, params)
	if err != nil {
		return nil, err
	}
	path, err := url.PathUnescape(escaped)
	if err != nil {
		return nil, fmt.Errorf("router: route %q built invalid path %q: %w", r.Name, escaped, err)
	}
	return &url.URL{Path: path, RawPath: escaped}, nil
}

// Registry stores routes by name. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	routes map[string]*Route
}

// Ensure Registry satisfies Resolver.
var _ Resolver = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routes: make(map[string]*Route),
	}
}

// Add registers a named route. Duplicate names return ErrDuplicateRoute.
func (r *Registry) Add(name, method, pattern string) (*Route, error) {
	route, err := NewRoute(name, method, pattern)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.routes[route.Name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, route.Name)
	}
	r.routes[route.Name] = route
	return route, nil
}

// MustAdd panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustAdd(name, method, pattern string) *Route {
	route, err := r.Add(name, method, pattern)
	if err != nil {
		panic(err)
	}
	return route
}

// Get returns the route registered under name.
func (r *Registry) Get(name string) (*Route, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	route, ok := r.routes[name]
	return route, ok
}

// Names returns the sorted route names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Routes returns the registered routes sorted by name.
func (r *Registry) Routes() []*Route {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Route, 0, len(names))
	for _, name := range names {
		if route, ok := r.routes[name]; ok {
			out = append(out, route)
		}
	}
	return out
}

// URLFor resolves the named route with params.
func (r *Registry) URLFor(name string, params map[string]string) (*url.URL, error) {
	route, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}
	return route.URL(params)
}
