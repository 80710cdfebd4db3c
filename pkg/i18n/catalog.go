package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when a requested locale has no catalog.
const DefaultLocale = "en"

var (
	// ErrMissingTranslator is reported when no translator is configured.
	ErrMissingTranslator = errors.New("i18n: translator not configured")
	// ErrMissingTranslation is reported when no catalog defines a key.
	ErrMissingTranslation = errors.New("i18n: missing translation")
)

// Translator resolves a message key for a locale. Args, when present, are
// applied to the message with fmt.Sprintf.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler picks the string used when a lookup fails.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

//go:embed locales/*.yaml
var localesFS embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Catalog is an immutable set of per-locale messages.
type Catalog struct {
	fallback string
	messages map[string]map[string]string
}

var _ Translator = (*Catalog)(nil)

// Default returns the embedded catalog (en, es) with DefaultLocale as the
// fallback.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(localesFS, "locales")
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalog, defaultErr = LoadFS(sub, DefaultLocale)
	})
	return defaultCatalog, defaultErr
}

type catalogFile struct {
	Messages map[string]string `yaml:"messages"`
}

// LoadFS reads every *.yaml / *.yml file at the root of fsys. The file stem is
// the locale. fallback must name one of the loaded locales.
func LoadFS(fsys fs.FS, fallback string) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("i18n: missing filesystem")
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalogs: %w", err)
	}

	catalog := &Catalog{
		fallback: NormalizeLocale(fallback),
		messages: make(map[string]map[string]string),
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		locale := NormalizeLocale(strings.TrimSuffix(entry.Name(), ext))
		if locale == "" {
			continue
		}
		if _, exists := catalog.messages[locale]; exists {
			return nil, fmt.Errorf("i18n: duplicate catalog for %q", locale)
		}

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", entry.Name(), err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", entry.Name(), err)
		}

		messages := make(map[string]string, len(file.Messages))
		for key, msg := range file.Messages {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			messages[key] = msg
		}
		catalog.messages[locale] = messages
	}

	if _, ok := catalog.messages[catalog.fallback]; !ok {
		return nil, fmt.Errorf("i18n: fallback locale %q has no catalog", fallback)
	}
	return catalog, nil
}

// Locales returns the loaded locales, sorted.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether locale, or its base language, has a catalog.
func (c *Catalog) HasLocale(locale string) bool {
	_, ok := c.resolve(locale)
	return ok
}

// Translate looks the key up in locale, then its base language, then the
// fallback locale.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}

	candidates := make([]string, 0, 2)
	if resolved, ok := c.resolve(locale); ok {
		candidates = append(candidates, resolved)
	}
	candidates = append(candidates, c.fallback)

	for _, loc := range candidates {
		msg, ok := c.messages[loc][key]
		if !ok {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...), nil
		}
		return msg, nil
	}
	return "", fmt.Errorf("%w: %q (%s)", ErrMissingTranslation, key, locale)
}

func (c *Catalog) resolve(locale string) (string, bool) {
	if c == nil {
		return "", false
	}
	locale = NormalizeLocale(locale)
	if locale == "" {
		return "", false
	}
	if _, ok := c.messages[locale]; ok {
		return locale, true
	}
	if base, _, found := strings.Cut(locale, "-"); found {
		if _, ok := c.messages[base]; ok {
			return base, true
		}
	}
	return "", false
}

// NormalizeLocale lower-cases locale and uses "-" as the region separator.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.ToLower(locale)
}

// SupportsLocale reports whether t can serve locale. Translators that do not
// expose HasLocale are assumed to support every locale.
func SupportsLocale(t Translator, locale string) bool {
	if t == nil {
		return false
	}
	if lister, ok := t.(interface{ HasLocale(string) bool }); ok {
		return lister.HasLocale(locale)
	}
	return true
}

// Translate resolves key through t, falling back to onMissing, then fallback,
// then the key itself.
func Translate(t Translator, locale, key, fallback string, onMissing MissingTranslationHandler, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	var err error
	if t == nil {
		err = ErrMissingTranslator
	} else {
		var result string
		result, err = t.Translate(locale, key, args...)
		if err == nil && strings.TrimSpace(result) != "" {
			return result
		}
	}

	if onMissing != nil {
		return onMissing(locale, key, args, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
