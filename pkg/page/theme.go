package page

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// DefaultThemeName names the built-in manifest.
	DefaultThemeName = "unitconv"
	// StylesheetAsset is the asset key the layout links when a theme ships one.
	StylesheetAsset = "page.stylesheet"
)

// DefaultManifest returns the built-in theme: a light palette with a "dark"
// variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#2563eb",
			"surface": "#ffffff",
			"canvas":  "#f3f4f6",
			"text":    "#111827",
			"muted":   "#6b7280",
			"border":  "#e5e7eb",
			"danger":  "#b91c1c",
			"radius":  "0.5rem",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand":   "#60a5fa",
					"surface": "#1f2937",
					"canvas":  "#111827",
					"text":    "#f9fafb",
					"muted":   "#9ca3af",
					"border":  "#374151",
					"danger":  "#f87171",
				},
			},
		},
	}
}

// StaticSelector always selects its manifest. Unknown variants fall back to
// the base tokens.
type StaticSelector struct {
	Manifest *theme.Manifest
}

var _ theme.ThemeSelector = StaticSelector{}

// Select implements theme.ThemeSelector.
func (s StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest := s.Manifest
	if manifest == nil {
		manifest = DefaultManifest()
	}
	if name != "" && name != manifest.Name {
		return nil, fmt.Errorf("page: unknown theme %q", name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}, nil
}

// ThemeFromSelection flattens a selection into renderer configuration.
func ThemeFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := ThemeFromManifest(selection.Manifest, selection.Variant)
	if cfg != nil && selection.Theme != "" {
		cfg.Theme = selection.Theme
	}
	return cfg
}

// ThemeFromManifest merges the variant over the base manifest. Tokens become
// CSS custom properties named "--<token>".
func ThemeFromManifest(manifest *theme.Manifest, variant string) *theme.RendererConfig {
	if manifest == nil {
		return nil
	}

	tokens := copyStringMap(manifest.Tokens)
	partials := copyStringMap(manifest.Templates)
	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)

	if v, ok := manifest.Variants[variant]; ok {
		tokens = mergeStringMap(tokens, v.Tokens)
		partials = mergeStringMap(partials, v.Templates)
		files = mergeStringMap(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	} else {
		variant = ""
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

// ThemeView is the template-facing part of a renderer configuration.
type ThemeView struct {
	Name         string `json:"name,omitempty"`
	Variant      string `json:"variant,omitempty"`
	CSSVarsStyle string `json:"css_vars_style,omitempty"`
	Stylesheet   string `json:"stylesheet,omitempty"`
}

// NewThemeView renders cfg into template strings. A nil cfg uses the default
// manifest.
func NewThemeView(cfg *theme.RendererConfig) ThemeView {
	if cfg == nil {
		cfg = ThemeFromManifest(DefaultManifest(), "")
	}
	view := ThemeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		view.Stylesheet = cfg.AssetURL(StylesheetAsset)
	}
	return view
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		if !safeCSSValue(vars[key]) {
			continue
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// safeCSSValue rejects values that could close the declaration or the style
// element they are written into.
func safeCSSValue(value string) bool {
	return value != "" && !strings.ContainsAny(value, "<>{};")
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(base, overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(overrides))
	}
	for key, value := range overrides {
		base[key] = value
	}
	return base
}
