package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/router"
)

// Environment variables overlaid by ApplyEnv.
const (
	EnvStaticRoot       = "URLFOR_STATIC_ROOT"
	EnvLegacyStaticRoot = "URLFOR_STATIC_ROOT_URL"
	EnvLogLevel         = "URLFOR_LOG_LEVEL"
)

// Route declares a named route in a config file.
type Route struct {
	Name    string `yaml:"name" toml:"name"`
	Method  string `yaml:"method,omitempty" toml:"method,omitempty"`
	Pattern string `yaml:"pattern" toml:"pattern"`
}

// OpenAPI points at an OpenAPI document whose operations become routes.
type OpenAPI struct {
	Path       string `yaml:"path" toml:"path"`
	PathPrefix string `yaml:"path_prefix,omitempty" toml:"path_prefix,omitempty"`
	Validate   bool   `yaml:"validate,omitempty" toml:"validate,omitempty"`
}

// Config is the application configuration consumed by the helpers and the
// CLI. It implements helpers.Settings.
type Config struct {
	StaticRoot    string   `yaml:"static_root,omitempty" toml:"static_root,omitempty"`
	StaticRootURL string   `yaml:"static_root_url,omitempty" toml:"static_root_url,omitempty"` // Deprecated: use StaticRoot.
	LogLevel      string   `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	Routes        []Route  `yaml:"routes,omitempty" toml:"routes,omitempty"`
	OpenAPI       *OpenAPI `yaml:"openapi,omitempty" toml:"openapi,omitempty"`

	// dir is the directory of the loaded file; relative paths resolve
	// against it.
	dir string
}

var _ helpers.Settings = (*Config)(nil)

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file.
func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("config: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes data according to the file extension.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := &Config{}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// ApplyEnv overlays non-empty environment values. lookup defaults to
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvStaticRoot); ok && v != "" {
		c.StaticRoot = v
	}
	if v, ok := lookup(EnvLegacyStaticRoot); ok && v != "" {
		c.StaticRootURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Lookup implements helpers.Settings. Empty values count as unset so a
// blank static_root falls through to the deprecated key.
func (c *Config) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	var value string
	switch key {
	case helpers.StaticRootKey:
		value = c.StaticRoot
	case helpers.LegacyStaticRootKey:
		value = c.StaticRootURL
	case "log_level":
		value = c.LogLevel
	}
	return value, value != ""
}

// BuildRegistry registers the configured routes followed by the operations
// of the OpenAPI document, if any.
func (c *Config) BuildRegistry(ctx context.Context) (*router.Registry, error) {
	reg := router.NewRegistry()
	if c == nil {
		return reg, nil
	}
	for i, r := range c.Routes {
		if _, err := reg.Add(r.Name, r.Method, r.Pattern); err != nil {
			return nil, fmt.Errorf("config: routes[%d]: %w", i, err)
		}
	}
	if c.OpenAPI == nil || strings.TrimSpace(c.OpenAPI.Path) == "" {
		return reg, nil
	}

	path := c.OpenAPI.Path
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read openapi %s: %w", path, err)
	}
	_, err = router.LoadOpenAPI(ctx, reg, data, router.OpenAPIOptions{
		PathPrefix: c.OpenAPI.PathPrefix,
		Validate:   c.OpenAPI.Validate,
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return reg, nil
}
