package helpers

import "strings"

// StaticURL joins the configured static root with path. Exactly one slash
// separates the two, whatever slashes either side carries:
//
//	root "/static/", path "/css/app.css" -> "/static/css/app.css"
//
// The deprecated LegacyStaticRootKey is used, with a warning, when
// StaticRootKey is unset. ErrStaticRootMissing is returned when neither is.
func StaticURL(app *App, path string) (string, error) {
	root, err := staticRoot(app)
	if err != nil {
		return "", err
	}
	return JoinStatic(root, path), nil
}

// JoinStatic joins root and path with a single slash.
func JoinStatic(root, path string) string {
	return strings.TrimRight(root, "/") + "/" + strings.TrimLeft(path, "/")
}

func staticRoot(app *App) (string, error) {
	if app == nil {
		return "", ErrStaticRootMissing
	}
	if root, ok := app.lookup(StaticRootKey); ok {
		return root, nil
	}
	root, ok := app.lookup(LegacyStaticRootKey)
	if !ok {
		return "", ErrStaticRootMissing
	}
	app.legacyWarn.Do(func() {
		app.logger.Warn().
			Str("setting", LegacyStaticRootKey).
			Str("replacement", StaticRootKey).
			Msg("static root setting is deprecated")
	})
	return root, nil
}
