package template

import (
	"io"
)

// TemplateRenderer is the engine contract the URL helpers are installed into.
// It mirrors the github.com/goliatone/go-template engine API so either engine
// can sit behind it.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
