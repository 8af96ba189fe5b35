package helpers

import (
	"fmt"
	"html/template"
)

// QueryKey is the reserved argument name carrying the query mapping in the
// url helper, e.g. url("items", "page", 2, "query_", filters).
const QueryKey = "query_"

// Helper names as exposed to templates.
const (
	URLHelper        = "url"
	StaticHelper     = "static"
	ThemeAssetHelper = "theme_asset"
)

// Helpers adapts URLFor and StaticURL to the calling conventions of template
// engines that call plain Go functions with positional arguments.
type Helpers struct {
	app *App
}

// New binds the helpers to app.
func New(app *App) *Helpers {
	return &Helpers{app: app}
}

// URL resolves a named route. Arguments are either alternating key/value
// pairs or a single map of parts; the QueryKey pair sets the query string.
//
//	{{ url("item-details", "id", 123) }}
//	{{ url("item-details", "id", item.id, "query_", filters) }}
func (h *Helpers) URL(name string, args ...any) (string, error) {
	parts, query, err := SplitArgs(args)
	if err != nil {
		return "", fmt.Errorf("helpers: url %q: %w", name, err)
	}
	u, err := URLFor(h.app, name, query, parts)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Static returns the URL of a static asset.
func (h *Helpers) Static(path string) (string, error) {
	return StaticURL(h.app, path)
}

// ThemeAsset returns the URL of a theme asset key.
func (h *Helpers) ThemeAsset(key string) (string, error) {
	return ThemeAssetURL(h.app, key)
}

// SplitArgs maps positional template arguments to route parts and a query.
func SplitArgs(args []any) (map[string]any, any, error) {
	parts := make(map[string]any)
	var query any

	if len(args) == 1 {
		var m map[string]any
		switch v := args[0].(type) {
		case map[string]any:
			m = v
		case map[string]string:
			m = make(map[string]any, len(v))
			for key, value := range v {
				m[key] = value
			}
		default:
			return nil, nil, fmt.Errorf("%w: single argument must be a map of parts, got %T", ErrInvalidArguments, args[0])
		}
		for key, value := range m {
			if key == QueryKey {
				query = value
				continue
			}
			parts[key] = value
		}
		return parts, query, nil
	}

	if len(args)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: expected key/value pairs, got %d arguments", ErrInvalidArguments, len(args))
	}
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			return nil, nil, fmt.Errorf("%w: argument %d must be a parameter name, got %T", ErrInvalidArguments, i, args[i])
		}
		if key == QueryKey {
			query = args[i+1]
			continue
		}
		if _, dup := parts[key]; dup {
			return nil, nil, fmt.Errorf("%w: parameter %q given twice", ErrInvalidArguments, key)
		}
		parts[key] = args[i+1]
	}
	return parts, query, nil
}

// GlobalHelpers returns the helpers keyed by template name, ready to be
// registered as globals on engines that accept Go functions.
func GlobalHelpers(app *App) map[string]any {
	h := New(app)
	return map[string]any{
		URLHelper:        h.URL,
		StaticHelper:     h.Static,
		ThemeAssetHelper: h.ThemeAsset,
	}
}

// FuncMap returns the helpers for html/template.
//
//	<a href="{{ url "item-details" "id" .ID }}">
func FuncMap(app *App) template.FuncMap {
	return template.FuncMap(GlobalHelpers(app))
}
