package helpers

import (
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-urlfor/pkg/router"
)

const (
	// StaticRootKey names the setting holding the static asset root, e.g.
	// "/static" or "https://cdn.example.com/assets".
	StaticRootKey = "static_root"
	// LegacyStaticRootKey is the deprecated name of StaticRootKey. It is
	// still read, with a warning, when StaticRootKey is unset.
	LegacyStaticRootKey = "static_root_url"
)

// Settings is the configuration slot helpers read from.
type Settings interface {
	Lookup(key string) (string, bool)
}

// Values is a map backed Settings implementation.
type Values map[string]string

// Lookup implements Settings.
func (v Values) Lookup(key string) (string, bool) {
	value, ok := v[key]
	return value, ok
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for deprecation warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithTheme attaches a theme asset resolver used by the theme_asset helper.
func WithTheme(assets *ThemeAssets) Option {
	return func(a *App) {
		a.theme = assets
	}
}

// App carries what the helpers need from the host application: a route
// resolver and the settings slot. Values are read only; an App can be shared
// across concurrent renders.
type App struct {
	resolver router.Resolver
	settings Settings
	theme    *ThemeAssets
	logger   zerolog.Logger

	legacyWarn sync.Once
}

// NewApp builds an App around resolver and settings. Settings may be nil when
// the static helper is not used.
func NewApp(resolver router.Resolver, settings Settings, opts ...Option) (*App, error) {
	if resolver == nil {
		return nil, errors.New("helpers: route resolver is required")
	}
	app := &App{
		resolver: resolver,
		settings: settings,
		logger:   zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(app)
	}
	return app, nil
}

// MustNewApp panics if NewApp fails.
func MustNewApp(resolver router.Resolver, settings Settings, opts ...Option) *App {
	app, err := NewApp(resolver, settings, opts...)
	if err != nil {
		panic(err)
	}
	return app
}

// Resolver returns the route resolver.
func (a *App) Resolver() router.Resolver {
	return a.resolver
}

func (a *App) lookup(key string) (string, bool) {
	if a.settings == nil {
		return "", false
	}
	return a.settings.Lookup(key)
}
