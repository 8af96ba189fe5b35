package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIOptions tunes how an OpenAPI document is turned into routes.
type OpenAPIOptions struct {
	// PathPrefix is prepended to every path, e.g. a server base path.
	PathPrefix string
	// SkipDuplicates ignores operations whose name is already registered
	// instead of failing.
	SkipDuplicates bool
	// Validate runs document validation before routes are registered.
	Validate bool
}

// LoadOpenAPI registers every operation of an OpenAPI 3 document as a named
// route. Operations without an operationId are named "method:path". It
// returns the names it registered.
func LoadOpenAPI(ctx context.Context, registry *Registry, data []byte, opts OpenAPIOptions) ([]string, error) {
	if registry == nil {
		return nil, errors.New("router: openapi: registry is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("router: openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("router: openapi: load document: %w", err)
	}
	if opts.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("router: openapi: validate: %w", err)
		}
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("router: openapi: document does not contain any paths")
	}

	prefix := strings.TrimRight(strings.TrimSpace(opts.PathPrefix), "/")
	var added []string

	// InMatchingOrder gives a stable order so duplicate handling is
	// deterministic.
	for _, path := range spec.Paths.InMatchingOrder() {
		item := spec.Paths.Value(path)
		if item == nil {
			continue
		}
		for _, method := range operationMethods {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return added, err
			}
			name := strings.TrimSpace(op.OperationID)
			if name == "" {
				name = strings.ToLower(method) + ":" + path
			}
			if _, exists := registry.Get(name); exists && opts.SkipDuplicates {
				continue
			}
			if _, err := registry.Add(name, method, prefix+path); err != nil {
				return added, fmt.Errorf("router: openapi: operation %q: %w", name, err)
			}
			added = append(added, name)
		}
	}
	return added, nil
}

var operationMethods = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "HEAD", "OPTIONS", "TRACE"}
