package router

import (
	"errors"
	"fmt"
)

var (
	// ErrRouteNotFound is returned when no route is registered under a name.
	ErrRouteNotFound = errors.New("router: route not found")
	// ErrDuplicateRoute is returned when a name is registered twice.
	ErrDuplicateRoute = errors.New("router: route already registered")
	// ErrInvalidPattern is returned for malformed route patterns.
	ErrInvalidPattern = errors.New("router: invalid route pattern")
	// ErrMissingParam is returned when a pattern placeholder has no value.
	ErrMissingParam = errors.New("router: missing route parameter")
	// ErrUnknownParam is returned when a value names no placeholder.
	ErrUnknownParam = errors.New("router: unknown route parameter")
	// ErrParamMismatch is returned when a value fails the placeholder regexp.
	ErrParamMismatch = errors.New("router: route parameter does not match pattern")
)

// ParamError reports a parameter problem while building a route URL.
type ParamError struct {
	Route string
	Param string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%v: route %q param %q value %q", e.Err, e.Route, e.Param, e.Value)
	}
	return fmt.Sprintf("%v: route %q param %q", e.Err, e.Route, e.Param)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
