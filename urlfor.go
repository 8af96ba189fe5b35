// Package urlfor exposes URL helpers for server-side templates: url reverses
// named routes and static builds asset URLs under a configured root.
//
// The root package aliases the most used types so a typical setup needs a
// single import:
//
//	reg := router.NewRegistry()
//	reg.MustAdd("item-details", "GET", "/items/{id}")
//	app := urlfor.MustNewApp(reg, urlfor.Values{urlfor.StaticRootKey: "/static"})
//	engine, _ := urlfor.NewEngine(app, gotemplate.WithFS(templates))
package urlfor

import (
	"net/url"

	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/render/template/gotemplate"
	"github.com/goliatone/go-urlfor/pkg/router"
)

// App bundles the route resolver and settings the helpers read.
type App = helpers.App

// Values is a map backed settings slot.
type Values = helpers.Values

// Option configures an App.
type Option = helpers.Option

const (
	// StaticRootKey names the static root setting.
	StaticRootKey = helpers.StaticRootKey
	// LegacyStaticRootKey is the deprecated static root setting.
	LegacyStaticRootKey = helpers.LegacyStaticRootKey
)

// NewApp builds an App around a route resolver and settings.
func NewApp(resolver router.Resolver, settings helpers.Settings, opts ...Option) (*App, error) {
	return helpers.NewApp(resolver, settings, opts...)
}

// MustNewApp panics if NewApp fails.
func MustNewApp(resolver router.Resolver, settings helpers.Settings, opts ...Option) *App {
	return helpers.MustNewApp(resolver, settings, opts...)
}

// URLFor resolves a named route; see helpers.URLFor.
func URLFor(app *App, name string, query any, parts map[string]any) (*url.URL, error) {
	return helpers.URLFor(app, name, query, parts)
}

// StaticURL builds a static asset URL; see helpers.StaticURL.
func StaticURL(app *App, path string) (string, error) {
	return helpers.StaticURL(app, path)
}

// GlobalHelpers returns the template helpers keyed by name.
func GlobalHelpers(app *App) map[string]any {
	return helpers.GlobalHelpers(app)
}

// NewEngine builds a pongo2 engine with the helpers registered.
func NewEngine(app *App, opts ...gotemplate.Option) (*gotemplate.Engine, error) {
	return gotemplate.New(append(opts, gotemplate.WithHelpers(app))...)
}
