package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/router"
)

// Routes registers the fixture routes shared by tests:
//
//	index         GET /
//	item-details  GET /items/{id}
//	post          GET /blog/{year:[0-9]{4}}/{slug}
func Routes(t *testing.T) *router.Registry {
	t.Helper()

	reg := router.NewRegistry()
	for _, r := range []struct{ name, pattern string }{
		{"index", "/"},
		{"item-details", "/items/{id}"},
		{"post", "/blog/{year:[0-9]{4}}/{slug}"},
	} {
		if _, err := reg.Add(r.name, "GET", r.pattern); err != nil {
			t.Fatalf("add route %q: %v", r.name, err)
		}
	}
	return reg
}

// NewApp builds a helpers.App over the fixture routes with a silent logger.
func NewApp(t *testing.T, settings helpers.Settings, opts ...helpers.Option) *helpers.App {
	t.Helper()

	opts = append([]helpers.Option{helpers.WithLogger(zerolog.Nop())}, opts...)
	app, err := helpers.NewApp(Routes(t), settings, opts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
