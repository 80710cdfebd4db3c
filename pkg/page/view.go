package page

import (
	"fmt"
	"net/url"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-unitconv/pkg/convert"
	"github.com/goliatone/go-unitconv/pkg/i18n"
)

// View is the template context for the converter page. Field names follow the
// json tags because the template engine flattens values through JSON.
type View struct {
	Lang        string    `json:"lang"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tabs        []Tab     `json:"tabs"`
	Form        Form      `json:"form"`
	Result      Result    `json:"result"`
	Sidebar     Sidebar   `json:"sidebar"`
	Theme       ThemeView `json:"theme"`
}

// Tab links to one category page.
type Tab struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Href     string `json:"href"`
	Active   bool   `json:"active"`
}

// Form holds the calculator inputs and their labels.
type Form struct {
	Action           string       `json:"action"`
	APIURL           string       `json:"api_url"`
	Category         string       `json:"category"`
	ValueName        string       `json:"value_name"`
	FromName         string       `json:"from_name"`
	ToName           string       `json:"to_name"`
	Value            string       `json:"value"`
	From             string       `json:"from"`
	To               string       `json:"to"`
	ValueLabel       string       `json:"value_label"`
	ValuePlaceholder string       `json:"value_placeholder"`
	FromLabel        string       `json:"from_label"`
	FromPlaceholder  string       `json:"from_placeholder"`
	ToLabel          string       `json:"to_label"`
	ToPlaceholder    string       `json:"to_placeholder"`
	Submit           string       `json:"submit"`
	Units            []UnitOption `json:"units"`
}

// UnitOption is a suggested unit for the from/to inputs.
type UnitOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Result is the rendered conversion outcome. Failures only ever show the
// generic ErrorText.
type Result struct {
	Label      string `json:"label"`
	Text       string `json:"text"`
	Failed     bool   `json:"failed"`
	ErrorText  string `json:"error_text"`
	ShareURL   string `json:"share_url"`
	ShareLabel string `json:"share_label"`
}

// Sidebar carries the static tips. Tips are sanitized markup.
type Sidebar struct {
	Title string   `json:"title"`
	Tips  []string `json:"tips"`
}

// BuildOptions controls links, labels and theming for Build.
type BuildOptions struct {
	// Locale is the active locale. When PathLocale is true it is also part of
	// every generated link.
	Locale     string
	PathLocale bool
	Translator i18n.Translator
	OnMissing  i18n.MissingTranslationHandler

	// BasePath is the mount prefix, RoutePath the converter route under it.
	BasePath  string
	RoutePath string
	APIPath   string
	Params    Params

	// Tips overrides the catalog tips. Markup is sanitized.
	Tips  []string
	Theme *theme.RendererConfig
}

var defaultTips = []struct{ key, fallback string }{
	{"tips.units", "Double-check your units before converting."},
	{"tips.decimals", "Use decimals for precise measurements."},
	{"tips.validate", "Validate your input for better accuracy."},
}

// Build turns a resolved state and its outcome into a View.
func Build(state State, outcome Outcome, opts BuildOptions) View {
	opts.Params = opts.Params.withDefaults()
	if strings.TrimSpace(opts.RoutePath) == "" {
		opts.RoutePath = "/converter"
	}
	tr := newTranslator(opts)

	label := categoryLabel(tr, state.Category)
	action := CategoryPath(opts.BasePath, opts.linkLocale(), opts.RoutePath, state.Category)

	view := View{
		Lang:        langOf(opts.Locale),
		Title:       tr("page.title", label+" Conversion", label),
		Description: tr("page.description", "Perform "+strings.ToLower(label)+" conversions quickly and easily.", strings.ToLower(label)),
		Category:    string(state.Category),
		Tabs:        buildTabs(tr, opts, state.Category),
		Form: Form{
			Action:           action,
			APIURL:           joinPath(opts.BasePath, opts.APIPath),
			Category:         string(state.Category),
			ValueName:        opts.Params.Value,
			FromName:         opts.Params.From,
			ToName:           opts.Params.To,
			Value:            FormatNumber(state.Value),
			From:             state.From,
			To:               state.To,
			ValueLabel:       tr("form.value", "Value"),
			ValuePlaceholder: tr("form.value.placeholder", "Enter value"),
			FromLabel:        tr("form.from", "From Unit"),
			FromPlaceholder:  tr("form.from.placeholder", "e.g. meters"),
			ToLabel:          tr("form.to", "To Unit"),
			ToPlaceholder:    tr("form.to.placeholder", "e.g. feet"),
			Submit:           tr("form.submit", "Convert"),
			Units:            unitOptions(state.Category),
		},
		Result: Result{
			Label:      tr("result.label", "Result:"),
			Failed:     outcome.Failed(),
			ErrorText:  tr("result.error", "Error in conversion"),
			ShareLabel: tr("result.share", "Link to this conversion"),
		},
		Sidebar: Sidebar{
			Title: tr("tips.title", "Conversion Tips"),
			Tips:  SanitizeTips(opts.Tips),
		},
		Theme: NewThemeView(opts.Theme),
	}

	if !outcome.Failed() {
		view.Result.Text = FormatNumber(outcome.Result)
		query := Query{Value: state.Value, From: state.From, To: state.To}
		view.Result.ShareURL = action + "?" + query.Encode(opts.Params).Encode()
	}

	if len(view.Sidebar.Tips) == 0 {
		for _, tip := range defaultTips {
			if text := SanitizeTip(tr(tip.key, tip.fallback)); text != "" {
				view.Sidebar.Tips = append(view.Sidebar.Tips, text)
			}
		}
	}
	return view
}

// NotFoundView is the template context for an unknown category.
type NotFoundView struct {
	Lang        string    `json:"lang"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tabs        []Tab     `json:"tabs"`
	Theme       ThemeView `json:"theme"`
}

// BuildNotFound describes an unknown category while still linking every
// supported one.
func BuildNotFound(category string, opts BuildOptions) NotFoundView {
	if strings.TrimSpace(opts.RoutePath) == "" {
		opts.RoutePath = "/converter"
	}
	tr := newTranslator(opts)
	return NotFoundView{
		Lang:        langOf(opts.Locale),
		Title:       tr("notfound.title", "Unknown conversion"),
		Description: tr("notfound.body", fmt.Sprintf("%q is not a supported conversion type.", category), category),
		Tabs:        buildTabs(tr, opts, ""),
		Theme:       NewThemeView(opts.Theme),
	}
}

// CategoryPath joins base, optional locale, route and category into a link.
func CategoryPath(basePath, locale, routePath string, category convert.Category) string {
	prefix := basePath
	if locale != "" {
		prefix = joinPath(prefix, url.PathEscape(locale))
	}
	return joinPath(joinPath(prefix, routePath), url.PathEscape(string(category)))
}

func (o BuildOptions) linkLocale() string {
	if !o.PathLocale {
		return ""
	}
	return o.Locale
}

type translateFunc func(key, fallback string, args ...any) string

func newTranslator(opts BuildOptions) translateFunc {
	return func(key, fallback string, args ...any) string {
		return i18n.Translate(opts.Translator, opts.Locale, key, fallback, opts.OnMissing, args...)
	}
}

func categoryLabel(tr translateFunc, category convert.Category) string {
	return tr("category."+string(category), category.Title())
}

func buildTabs(tr translateFunc, opts BuildOptions, active convert.Category) []Tab {
	categories := convert.Categories()
	tabs := make([]Tab, 0, len(categories))
	for _, category := range categories {
		tabs = append(tabs, Tab{
			Category: string(category),
			Label:    categoryLabel(tr, category),
			Href:     CategoryPath(opts.BasePath, opts.linkLocale(), opts.RoutePath, category),
			Active:   category == active,
		})
	}
	return tabs
}

func unitOptions(category convert.Category) []UnitOption {
	units, err := convert.Units(category)
	if err != nil {
		return nil
	}
	out := make([]UnitOption, 0, len(units))
	for _, unit := range units {
		out = append(out, UnitOption{Name: unit.Name, Label: unit.Label})
	}
	return out
}

func langOf(locale string) string {
	locale = i18n.NormalizeLocale(locale)
	if locale == "" {
		return i18n.DefaultLocale
	}
	return locale
}

func joinPath(base, route string) string {
	base = strings.TrimSpace(base)
	route = strings.TrimSpace(route)

	if route == "" {
		route = "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if base == "" || base == "/" {
		return route
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	base = strings.TrimRight(base, "/")
	if route == "/" {
		return base
	}
	return base + route
}
