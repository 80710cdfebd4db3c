package converter

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-unitconv/pkg/convert"
	"github.com/goliatone/go-unitconv/pkg/i18n"
	"github.com/goliatone/go-unitconv/pkg/page"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions serves every converter route mounted at the root.
// Callers are expected to pass an Options value produced by NewOptions (or
// equivalent) so defaults apply.
func HandlerWithOptions(opts Options) http.Handler {
	mux := http.NewServeMux()
	if _, err := RegisterRoutesWithOptions(mux, "", opts); err != nil {
		panic(err)
	}
	return mux
}

// PageHandler serves the converter page for the category in the last path
// segment. Patterns registered with {category} and {locale} wildcards are
// read through the request path values.
func PageHandler(fns ...OptionFn) http.Handler {
	return newService(NewOptions(fns...), "").pageHandler()
}

// service holds the dependencies resolved once per mount.
type service struct {
	opts     Options
	basePath string

	renderer    *page.Renderer
	rendererErr error
	translator  i18n.Translator
	theme       *theme.RendererConfig

	apiDoc *apiDocument
}

func newService(opts Options, basePath string) *service {
	opts = NewOptions(func(o *Options) { *o = opts })
	s := &service{
		opts:     opts,
		basePath: normalizeBasePath(basePath),
	}

	s.renderer = opts.Renderer
	if s.renderer == nil {
		s.renderer, s.rendererErr = page.DefaultRenderer()
		if s.rendererErr != nil {
			opts.Logger.Printf("converter: load templates: %v", s.rendererErr)
		}
	}

	s.translator = opts.Translator
	if s.translator == nil {
		catalog, err := i18n.Default()
		if err != nil {
			opts.Logger.Printf("converter: load locale catalog: %v", err)
		} else {
			s.translator = catalog
		}
	}

	s.theme = resolveTheme(opts)
	s.apiDoc = newAPIDocument(s.basePath)
	return s
}

func resolveTheme(opts Options) *theme.RendererConfig {
	selector := opts.ThemeSelector
	if selector == nil {
		selector = page.StaticSelector{Manifest: opts.Theme}
	}
	selection, err := selector.Select("", opts.ThemeVariant)
	if err != nil || selection == nil {
		if err != nil {
			opts.Logger.Printf("converter: select theme: %v", err)
		}
		return page.ThemeFromManifest(page.DefaultManifest(), "")
	}
	return page.ThemeFromSelection(selection)
}

func (s *service) pageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allowRead(w, r) {
			return
		}

		locale, pathLocale := s.requestLocale(r)
		buildOpts := s.buildOptions(locale, pathLocale)

		if pathLocale && !i18n.SupportsLocale(s.translator, locale) {
			s.logf(r, "unknown locale %q", locale)
			buildOpts = s.buildOptions(s.opts.DefaultLocale, false)
			s.renderNotFound(w, r, page.BuildNotFound(strings.Trim(r.URL.Path, "/"), buildOpts))
			return
		}

		raw := categoryFromRequest(r)
		category, err := convert.ParseCategory(raw)
		if err != nil {
			s.logf(r, "unknown category %q", raw)
			s.renderNotFound(w, r, page.BuildNotFound(raw, buildOpts))
			return
		}

		state := page.Resolve(category, page.ParseQuery(r.URL.Query(), s.opts.Params))
		outcome := page.Calculate(state)
		if outcome.Failed() {
			s.logf(r, "convert %s %s %s->%s: %v", state.Category, page.FormatNumber(state.Value), state.From, state.To, outcome.Err)
		}

		var buf bytes.Buffer
		if err := s.pageRenderer().Page(&buf, page.Build(state, outcome, buildOpts)); err != nil {
			s.logf(r, "render page: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		writeHTML(w, r, http.StatusOK, buf.Bytes())
	})
}

func (s *service) renderNotFound(w http.ResponseWriter, r *http.Request, view page.NotFoundView) {
	var buf bytes.Buffer
	if err := s.pageRenderer().NotFound(&buf, view); err != nil {
		s.logf(r, "render not found page: %v", err)
		http.NotFound(w, r)
		return
	}
	writeHTML(w, r, http.StatusNotFound, buf.Bytes())
}

func (s *service) pageRenderer() *page.Renderer {
	if s.rendererErr != nil {
		return nil
	}
	return s.renderer
}

func (s *service) buildOptions(locale string, pathLocale bool) page.BuildOptions {
	return page.BuildOptions{
		Locale:     locale,
		PathLocale: pathLocale,
		Translator: s.translator,
		BasePath:   s.basePath,
		RoutePath:  s.opts.PageRoutePath,
		APIPath:    joinRoute(s.opts.APIRoutePath, convertRoute),
		Params:     s.opts.Params,
		Tips:       s.opts.Tips,
		Theme:      s.theme,
	}
}

// requestLocale returns the locale for r and whether it came from the path.
func (s *service) requestLocale(r *http.Request) (string, bool) {
	if locale := i18n.NormalizeLocale(r.PathValue("locale")); locale != "" {
		return locale, true
	}
	return s.opts.DefaultLocale, false
}

// allowRead enforces GET/HEAD and the guard. It writes the response and
// returns false when the request must stop.
func (s *service) allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if s.opts.Guard != nil {
		if err := s.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return false
		}
	}
	return true
}

func (s *service) logf(r *http.Request, format string, args ...any) {
	if s.opts.Logger == nil {
		return
	}
	id := "-"
	if r != nil {
		if rid := RequestID(r.Context()); rid != "" {
			id = rid
		}
	}
	s.opts.Logger.Printf("converter: [%s] %s", id, fmt.Sprintf(format, args...))
}

func categoryFromRequest(r *http.Request) string {
	if raw := r.PathValue("category"); raw != "" {
		return raw
	}
	return path.Base(strings.TrimRight(r.URL.Path, "/"))
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
