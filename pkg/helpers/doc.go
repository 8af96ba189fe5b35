// Package helpers provides the URL helpers templates call: url resolves a
// named route with path parameters and an optional query string, static
// joins an asset path onto the configured static root, and theme_asset
// resolves go-theme asset keys through static.
//
// The helpers only read from an App (a router.Resolver plus a Settings slot)
// and are safe to share across concurrent renders.
package helpers
