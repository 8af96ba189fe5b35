package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/testsupport"
)

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "app.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &Config{
		StaticRoot: "/static/",
		LogLevel:   "debug",
		Routes: []Route{
			{Name: "index", Pattern: "/"},
			{Name: "item-details", Method: "get", Pattern: "/items/{id:[0-9]+}"},
		},
		OpenAPI: &OpenAPI{Path: "petstore.yaml", PathPrefix: "/api"},
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TOMLUsesLegacyKey(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "app.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := cfg.Lookup(helpers.StaticRootKey); ok {
		t.Fatalf("expected static_root unset")
	}
	root, ok := cfg.Lookup(helpers.LegacyStaticRootKey)
	if !ok || root != "https://cdn.example.com/assets" {
		t.Fatalf("unexpected legacy root %q (%v)", root, ok)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Load(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Parse([]byte("{}"), ".json"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if _, err := Parse([]byte("routes: [::"), ".yaml"); err == nil {
		t.Fatalf("expected yaml decode error")
	}
}

func TestApplyEnv_OverridesValues(t *testing.T) {
	cfg := &Config{StaticRoot: "/static", LogLevel: "info"}
	env := map[string]string{
		EnvStaticRoot: "https://cdn.example.com",
		EnvLogLevel:   "",
	}
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	if cfg.StaticRoot != "https://cdn.example.com" {
		t.Fatalf("static root not overridden: %q", cfg.StaticRoot)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("empty env value should not override: %q", cfg.LogLevel)
	}
}

func TestBuildRegistry_RoutesAndOpenAPI(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "app.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	reg, err := cfg.BuildRegistry(testsupport.Context())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	if diff := cmp.Diff([]string{"index", "item-details", "showPetById"}, reg.Names()); diff != "" {
		t.Fatalf("route names mismatch (-want +got):\n%s", diff)
	}

	app, err := helpers.NewApp(reg, cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	u, err := helpers.URLFor(app, "showPetById", nil, map[string]any{"petId": "rex"})
	if err != nil {
		t.Fatalf("url for: %v", err)
	}
	if u.String() != "/api/pets/rex" {
		t.Fatalf("unexpected url %q", u.String())
	}
	static, err := helpers.StaticURL(app, "/js/app.js")
	if err != nil {
		t.Fatalf("static url: %v", err)
	}
	if static != "/static/js/app.js" {
		t.Fatalf("unexpected static url %q", static)
	}
}

func TestBuildRegistry_InvalidRoute(t *testing.T) {
	cfg := &Config{Routes: []Route{{Name: "bad", Pattern: "no-slash"}}}
	if _, err := cfg.BuildRegistry(testsupport.Context()); err == nil {
		t.Fatalf("expected invalid route error")
	}
}
