package converter

import (
	"log"
	"net/http"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-unitconv/pkg/i18n"
	"github.com/goliatone/go-unitconv/pkg/page"
)

// GuardFunc rejects a request by returning an error. Errors implementing
// HTTPError choose the status code; anything else is a 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	PageRoutePath string
	APIRoutePath  string
	Params        page.Params
	DefaultLocale string
	Guard         GuardFunc
	Logger        *log.Logger

	// Renderer renders pages; nil uses the built-in templates.
	Renderer *page.Renderer
	// Translator supplies page copy; nil uses the embedded catalogs.
	Translator i18n.Translator

	Theme         *theme.Manifest
	ThemeVariant  string
	ThemeSelector theme.ThemeSelector

	Tips []string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		PageRoutePath: "/converter",
		APIRoutePath:  "/api",
		Params:        page.DefaultParams(),
		DefaultLocale: i18n.DefaultLocale,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	def := DefaultOptions()
	if strings.TrimSpace(opts.PageRoutePath) == "" {
		opts.PageRoutePath = def.PageRoutePath
	}
	if strings.TrimSpace(opts.APIRoutePath) == "" {
		opts.APIRoutePath = def.APIRoutePath
	}
	if strings.TrimSpace(opts.Params.Value) == "" {
		opts.Params.Value = def.Params.Value
	}
	if strings.TrimSpace(opts.Params.Units) == "" {
		opts.Params.Units = def.Params.Units
	}
	if strings.TrimSpace(opts.Params.From) == "" {
		opts.Params.From = def.Params.From
	}
	if strings.TrimSpace(opts.Params.To) == "" {
		opts.Params.To = def.Params.To
	}
	if opts.DefaultLocale = i18n.NormalizeLocale(opts.DefaultLocale); opts.DefaultLocale == "" {
		opts.DefaultLocale = def.DefaultLocale
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Tips != nil {
		opts.Tips = append([]string{}, opts.Tips...)
	}
	return opts
}

func WithPageRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PageRoutePath = path
	}
}

func WithAPIRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.APIRoutePath = path
	}
}

// WithParams renames the navigation parameters. Empty names keep defaults.
func WithParams(params page.Params) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Params = params
	}
}

func WithDefaultLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLocale = locale
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *log.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithRenderer(renderer *page.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithTranslator(translator i18n.Translator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = translator
	}
}

// WithTheme selects a manifest and variant for the page CSS variables.
func WithTheme(manifest *theme.Manifest, variant string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = manifest
		o.ThemeVariant = variant
	}
}

// WithThemeSelector resolves the theme through selector instead of a single
// manifest.
func WithThemeSelector(selector theme.ThemeSelector) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ThemeSelector = selector
	}
}

// WithTips replaces the sidebar tips. Markup is sanitized before rendering.
func WithTips(tips []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if tips == nil {
			o.Tips = nil
			return
		}
		o.Tips = append([]string{}, tips...)
	}
}
