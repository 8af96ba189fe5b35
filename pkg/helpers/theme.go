package helpers

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrThemeAssetNotFound is returned for asset keys the manifest does not list.
var ErrThemeAssetNotFound = errors.New("helpers: theme asset not found")

// ThemeAssets maps logical asset keys ("preact.stylesheet") to files listed
// in a go-theme manifest. Variant files override the base manifest.
type ThemeAssets struct {
	manifest *theme.Manifest
	variant  string
}

// NewThemeAssets builds a resolver for manifest and the optional variant.
func NewThemeAssets(manifest *theme.Manifest, variant string) (*ThemeAssets, error) {
	if manifest == nil {
		return nil, errors.New("helpers: theme manifest is required")
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("helpers: theme %q has no variant %q", manifest.Name, variant)
		}
	}
	return &ThemeAssets{manifest: manifest, variant: variant}, nil
}

// Path returns the asset path relative to the static root.
func (t *ThemeAssets) Path(key string) (string, error) {
	if t == nil || t.manifest == nil {
		return "", fmt.Errorf("%w: %q (no theme configured)", ErrThemeAssetNotFound, key)
	}
	prefix := t.manifest.Assets.Prefix
	file, ok := t.manifest.Assets.Files[key]

	if t.variant != "" {
		v := t.manifest.Variants[t.variant]
		if vf, found := v.Assets.Files[key]; found {
			file, ok = vf, true
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}
	if !ok || strings.TrimSpace(file) == "" {
		return "", fmt.Errorf("%w: %q in theme %q", ErrThemeAssetNotFound, key, t.manifest.Name)
	}
	if strings.TrimSpace(prefix) == "" {
		return strings.TrimLeft(file, "/"), nil
	}
	return strings.Trim(JoinStatic(prefix, file), "/"), nil
}

// ThemeAssetURL resolves key against the app theme and joins it with the
// static root.
func ThemeAssetURL(app *App, key string) (string, error) {
	if app == nil {
		return "", ErrStaticRootMissing
	}
	path, err := app.theme.Path(key)
	if err != nil {
		return "", err
	}
	return StaticURL(app, path)
}
