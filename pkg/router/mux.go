package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Mux mounts handlers on a chi router while recording each one as a named
// route, so the same table serves requests and reverses URLs.
type Mux struct {
	chi      chi.Router
	registry *Registry
}

// Ensure Mux satisfies Resolver.
var _ Resolver = (*Mux)(nil)

// NewMux wraps r and registry. Nil arguments get fresh instances.
func NewMux(r chi.Router, registry *Registry) *Mux {
	if r == nil {
		r = chi.NewRouter()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Mux{chi: r, registry: registry}
}

// Router exposes the wrapped chi router, e.g. to install middleware.
func (m *Mux) Router() chi.Router {
	return m.chi
}

// Registry exposes the named route table.
func (m *Mux) Registry() *Registry {
	return m.registry
}

// Handle registers handler for method+pattern and records it under name.
func (m *Mux) Handle(name, method, pattern string, handler http.Handler) (*Route, error) {
	if handler == nil {
		return nil, fmt.Errorf("router: handler for %q is required", name)
	}
	route, err := m.registry.Add(name, method, pattern)
	if err != nil {
		return nil, err
	}
	m.chi.Method(route.Method, route.Pattern, handler)
	return route, nil
}

// HandleFunc is Handle for plain functions.
func (m *Mux) HandleFunc(name, method, pattern string, fn http.HandlerFunc) (*Route, error) {
	if fn == nil {
		return nil, fmt.Errorf("router: handler for %q is required", name)
	}
	return m.Handle(name, method, pattern, fn)
}

// Static serves files from fsys under prefix and returns the mount pattern.
func (m *Mux) Static(prefix string, fsys fs.FS) (string, error) {
	if fsys == nil {
		return "", fmt.Errorf("router: static file system is required")
	}
	prefix = "/" + strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "/" {
		prefix = ""
	}
	pattern := prefix + "/*"
	handler := http.StripPrefix(prefix, http.FileServerFS(fsys))
	m.chi.Method(http.MethodGet, pattern, handler)
	m.chi.Method(http.MethodHead, pattern, handler)
	return pattern, nil
}

// ServeHTTP delegates to chi.
func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.chi.ServeHTTP(w, r)
}

// URLFor resolves a named route through the registry.
func (m *Mux) URLFor(name string, params map[string]string) (*url.URL, error) {
	return m.registry.URLFor(name, params)
}
