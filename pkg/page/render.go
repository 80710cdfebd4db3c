package page

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/goliatone/go-unitconv/pkg/render/template"
	"github.com/goliatone/go-unitconv/pkg/render/template/gotemplate"
)

const (
	// PageTemplate renders a converter page.
	PageTemplate = "converter"
	// NotFoundTemplate renders the unknown category page.
	NotFoundTemplate = "notfound"
)

//go:embed templates/*.tpl templates/partials/*.tpl
var embeddedTemplates embed.FS

var (
	defaultRendererOnce sync.Once
	defaultRenderer     *Renderer
	defaultRendererErr  error
)

// TemplatesFS exposes the built-in templates rooted at the templates directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(fmt.Sprintf("page: templates sub fs: %v", err))
	}
	return sub
}

// Renderer renders page views through a TemplateRenderer.
type Renderer struct {
	engine template.TemplateRenderer
}

// NewRenderer wraps engine. The engine must resolve the converter and
// notfound templates along with their partials.
func NewRenderer(engine template.TemplateRenderer) (*Renderer, error) {
	if engine == nil {
		return nil, errors.New("page: template renderer is nil")
	}
	return &Renderer{engine: engine}, nil
}

// NewTemplateRenderer builds a pongo2 engine over the built-in templates.
// Templates in dir, when given, take precedence.
func NewTemplateRenderer(dir string) (*Renderer, error) {
	opts := []gotemplate.Option{gotemplate.WithFS(TemplatesFS())}
	if dir != "" {
		opts = append(opts, gotemplate.WithBaseDir(dir))
	}
	engine, err := gotemplate.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("page: template engine: %w", err)
	}
	return NewRenderer(engine)
}

// DefaultRenderer returns a shared renderer over the built-in templates.
func DefaultRenderer() (*Renderer, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = NewTemplateRenderer("")
	})
	return defaultRenderer, defaultRendererErr
}

// Page writes the converter page. Nothing is written when rendering fails.
func (r *Renderer) Page(w io.Writer, view View) error {
	return r.render(w, PageTemplate, view)
}

// NotFound writes the unknown category page.
func (r *Renderer) NotFound(w io.Writer, view NotFoundView) error {
	return r.render(w, NotFoundTemplate, view)
}

func (r *Renderer) render(w io.Writer, name string, data any) error {
	if r == nil || r.engine == nil {
		return errors.New("page: renderer is nil")
	}
	if _, err := r.engine.RenderTemplate(name, data, w); err != nil {
		return fmt.Errorf("page: render %s: %w", name, err)
	}
	return nil
}
