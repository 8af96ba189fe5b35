// Package template defines the renderer-agnostic template engine contract and
// its pongo2 adapter (subpackage gotemplate), which exposes the URL helpers
// as template globals.
package template
