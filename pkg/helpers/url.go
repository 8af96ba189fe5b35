package helpers

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strconv"
)

// CleanParts converts route parameter values to strings. Strings (including
// named string types) and integers are accepted; every other type, booleans
// included, yields a *ParamTypeError.
func CleanParts(parts map[string]any) (map[string]string, error) {
	clean := make(map[string]string, len(parts))
	// Sorted keys keep the reported error stable when several values are bad.
	keys := make([]string, 0, len(parts))
	for key := range parts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, err := paramString(key, parts[key])
		if err != nil {
			return nil, err
		}
		clean[key] = value
	}
	return clean, nil
}

func paramString(key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case bool, nil:
		return "", &ParamTypeError{Key: key, Value: value}
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return "", &ParamTypeError{Key: key, Value: value}
	}
}

// URLFor resolves the named route with parts as path parameters. A non-empty
// query replaces the query string of the resolved URL.
//
//	URLFor(app, "item-details", map[string]string{"active": "true"}, map[string]any{"id": 123})
//	// "/items/123?active=true"
func URLFor(app *App, name string, query any, parts map[string]any) (*url.URL, error) {
	if app == nil || app.resolver == nil {
		return nil, fmt.Errorf("helpers: url %q: app is not configured", name)
	}

	clean, err := CleanParts(parts)
	if err != nil {
		return nil, err
	}

	u, err := app.resolver.URLFor(name, clean)
	if err != nil {
		return nil, err
	}

	values, err := QueryValues(query)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}
	return u, nil
}

// QueryValues normalises the query forms templates pass around. Values may
// be strings, integers or finite floats; booleans and other types are
// rejected. Path parameters stay stricter and never accept floats.
func QueryValues(query any) (url.Values, error) {
	switch q := query.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return q, nil
	case map[string][]string:
		return url.Values(q), nil
	case map[string]string:
		out := make(url.Values, len(q))
		for key, value := range q {
			out.Set(key, value)
		}
		return out, nil
	case map[string]any:
		out := make(url.Values, len(q))
		for key, value := range q {
			if err := addQueryValue(out, key, value); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: query must be a mapping, got %T", ErrInvalidArguments, query)
	}
}

func addQueryValue(out url.Values, key string, value any) error {
	if list, ok := value.([]any); ok {
		for _, item := range list {
			s, err := queryString(key, item)
			if err != nil {
				return err
			}
			out.Add(key, s)
		}
		return nil
	}
	if list, ok := value.([]string); ok {
		for _, item := range list {
			out.Add(key, item)
		}
		return nil
	}
	s, err := queryString(key, value)
	if err != nil {
		return err
	}
	out.Set(key, s)
	return nil
}

func queryString(key string, value any) (string, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return paramString(key, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", &ParamTypeError{Key: key, Value: value}
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}
