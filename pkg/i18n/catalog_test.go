package i18n

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_LoadsEmbeddedLocales(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "es"}, catalog.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}

	got, err := catalog.Translate("en", "page.title", "Length")
	if err != nil || got != "Length Conversion" {
		t.Fatalf("en title: %q, %v", got, err)
	}
	got, err = catalog.Translate("es", "category.weight")
	if err != nil || got != "Peso" {
		t.Fatalf("es weight: %q, %v", got, err)
	}
}

func TestCatalog_TranslateFallbacks(t *testing.T) {
	catalog, err := LoadFS(fstest.MapFS{
		"en.yaml":     {Data: []byte("messages:\n  greet: Hello\n  only.en: English\n")},
		"pt_BR.yml":   {Data: []byte("messages:\n  greet: Olá\n")},
		"README.md":   {Data: []byte("ignored")},
		"nested/x.ya": {Data: []byte("ignored")},
	}, "en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		locale, key, want string
	}{
		{"pt-BR", "greet", "Olá"},
		{"PT_br", "greet", "Olá"},
		{"pt-BR", "only.en", "English"},
		{"fr", "greet", "Hello"},
		{"", "greet", "Hello"},
	}
	for _, tc := range cases {
		got, err := catalog.Translate(tc.locale, tc.key)
		if err != nil {
			t.Fatalf("%s/%s: %v", tc.locale, tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("%s/%s: got %q, want %q", tc.locale, tc.key, got, tc.want)
		}
	}

	if _, err := catalog.Translate("en", "missing"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
	if !catalog.HasLocale("pt-br") || catalog.HasLocale("fr") {
		t.Fatalf("unexpected HasLocale results")
	}
}

func TestLoadFS_RequiresFallbackCatalog(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"es.yaml": {Data: []byte("messages:\n  greet: Hola\n")},
	}, "en")
	if err == nil {
		t.Fatalf("expected error when fallback locale is missing")
	}
}

func TestTranslateHelper(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	if got := Translate(catalog, "es", "form.submit", "Convert", nil); got != "Convertir" {
		t.Fatalf("got %q", got)
	}
	if got := Translate(nil, "es", "form.submit", "Convert", nil); got != "Convert" {
		t.Fatalf("nil translator should use fallback, got %q", got)
	}
	if got := Translate(catalog, "en", "no.such.key", "", nil); got != "no.such.key" {
		t.Fatalf("missing key without fallback should return key, got %q", got)
	}

	var seen error
	got := Translate(catalog, "en", "no.such.key", "x", func(_, key string, _ []any, err error) string {
		seen = err
		return "[" + key + "]"
	})
	if got != "[no.such.key]" || !errors.Is(seen, ErrMissingTranslation) {
		t.Fatalf("onMissing not applied: %q, %v", got, seen)
	}
}

func TestSupportsLocale(t *testing.T) {
	catalog, _ := Default()
	if !SupportsLocale(catalog, "es-MX") {
		t.Fatalf("es-MX should resolve to es")
	}
	if SupportsLocale(catalog, "de") {
		t.Fatalf("de is not loaded")
	}
	if SupportsLocale(nil, "en") {
		t.Fatalf("nil translator supports nothing")
	}
}
