package gotemplate_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/render/template/gotemplate"
	"github.com/goliatone/go-urlfor/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestEngine_RenderTemplateWithHelpers(t *testing.T) {
	app := testsupport.NewApp(t, helpers.Values{helpers.StaticRootKey: "/static/"})
	engine := newEngine(t, gotemplate.WithHelpers(app))

	data := map[string]any{
		"item":    map[string]any{"id": 42, "name": " Widget "},
		"filters": map[string]string{"active": "true"},
	}
	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("links", data, w)
	})

	goldenPath := filepath.Join("testdata", "links.golden")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(result)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, result); diff != "" {
		t.Fatalf("render template mismatch result (-want +got):\n%s", diff)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_IntegerContextValues(t *testing.T) {
	app := testsupport.NewApp(t, nil)
	engine := newEngine(t, gotemplate.WithHelpers(app))

	type item struct {
		ID   int     `json:"id"`
		Rank float64 `json:"rank"`
	}

	tests := []struct {
		name string
		tpl  string
		data any
	}{
		{name: "top level int", tpl: `{{ url("item-details", "id", id) }}`, data: map[string]any{"id": 9}},
		{name: "nested struct", tpl: `{{ url("item-details", "id", item.id) }}`, data: map[string]any{"item": item{ID: 9}}},
		{name: "struct data", tpl: `{{ url("item-details", "id", id) }}`, data: item{ID: 9}},
		{name: "typed slice", tpl: `{{ url("item-details", "id", ids.0) }}`, data: map[string]any{"ids": []int{9}}},
		{name: "slice of structs", tpl: `{% for it in items %}{{ url("item-details", "id", it.id) }}{% endfor %}`, data: map[string]any{"items": []item{{ID: 9}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := engine.RenderString(tc.tpl, tc.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if out != "/items/9" {
				t.Fatalf("unexpected output %q", out)
			}
		})
	}

	// Fractional numbers stay floats and are still rejected as path parts.
	_, err := engine.RenderString(`{{ url("item-details", "id", item.rank) }}`, map[string]any{"item": item{ID: 9, Rank: 1.5}})
	if err == nil || !strings.Contains(err.Error(), "argument value should be string or int") {
		t.Fatalf("expected float param rejected, got %v", err)
	}
}

func TestEngine_RejectsNonObjectData(t *testing.T) {
	engine := newEngine(t)

	for _, data := range []any{[]string{"a"}, "text", 42} {
		_, err := engine.RenderString(`{{ x }}`, data)
		if err == nil || !strings.Contains(err.Error(), "render data must be an object") {
			t.Fatalf("expected object error for %T, got %v", data, err)
		}
	}
}

func TestEngine_HelperErrorsPropagate(t *testing.T) {
	app := testsupport.NewApp(t, nil)
	engine := newEngine(t, gotemplate.WithHelpers(app))

	_, err := engine.RenderTemplate("bad-param", nil)
	if err == nil || !strings.Contains(err.Error(), "argument value should be string or int") {
		t.Fatalf("expected bool param error, got %v", err)
	}

	_, err = engine.RenderTemplate("static-only", nil)
	if err == nil || !strings.Contains(err.Error(), "does not define a static root url") {
		t.Fatalf("expected static root error, got %v", err)
	}
}

func TestEngine_GlobalContextAndQueryFilter(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"defaults": map[string]any{"page": 2},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	out, err := engine.Render(`?{{ defaults|querystring }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "?page=2" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("urlfor_shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("urlfor_shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	out, err := engine.RenderString(`{{ name|urlfor_shout }}`, map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "ADA!" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
