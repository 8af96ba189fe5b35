package helpers

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParamType is returned for route parameters that are neither
	// strings nor integers. Booleans are rejected too.
	ErrInvalidParamType = errors.New("helpers: invalid route parameter type")
	// ErrStaticRootMissing is returned when no static root is configured.
	ErrStaticRootMissing = errors.New(
		"helpers: app does not define a static root url, you need to set the url root " +
			"with the \"" + StaticRootKey + "\" setting",
	)
	// ErrInvalidArguments is returned when template arguments cannot be
	// mapped to route parameters.
	ErrInvalidArguments = errors.New("helpers: invalid helper arguments")
)

// ParamTypeError describes a rejected route parameter.
type ParamTypeError struct {
	Key   string
	Value any
}

func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("argument value should be string or int, got %s -> [%T] %#v", e.Key, e.Value, e.Value)
}

func (e *ParamTypeError) Unwrap() error {
	return ErrInvalidParamType
}
