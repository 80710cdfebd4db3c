package unitconv

import (
	"errors"
	"io/fs"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConvert(t *testing.T) {
	got, err := Convert("volume", 1, "gallon", "l")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if math.Abs(got-3.78541) > 1e-9 {
		t.Fatalf("expected ~3.78541, got %v", got)
	}

	if _, err := Convert("density", 1, "a", "b"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if len(Categories()) != 6 {
		t.Fatalf("expected six categories")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"layout.tpl", "converter.tpl", "notfound.tpl", "partials/calculator.tpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected template %s: %v", name, err)
		}
	}
}

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	if _, err := RegisterRoutes(mux, ""); err != nil {
		t.Fatalf("register routes: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/convert?category=length&value=1&from=kilometer&to=meter", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if NewComponent().Options().PageRoutePath != "/converter" {
		t.Fatalf("unexpected component defaults")
	}
}
