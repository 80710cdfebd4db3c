package template

import (
	"io"
)

// TemplateRenderer is the seam the page layer renders through.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
