package converter

import (
	"bytes"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/goliatone/go-unitconv/pkg/testsupport"
)

func quietHandler() http.Handler {
	return NewHandler(WithLogger(log.New(&bytes.Buffer{}, "", 0)))
}

func TestConvertAPI_Success(t *testing.T) {
	rec := serve(t, quietHandler(), http.MethodGet, "/api/convert?category=weight&value=10&from=kg&to=lb", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != contentTypeJSON {
		t.Fatalf("unexpected content-type %q", ct)
	}

	payload := testsupport.MustDecodeJSON[dataResponse[Conversion]](t, rec.Body)
	got := payload.Data
	if got.Category != "weight" || got.Value != 10 || got.From != "kg" || got.To != "lb" {
		t.Fatalf("unexpected echo: %+v", got)
	}
	if math.Abs(got.Result-22.0462) > 1e-4 {
		t.Fatalf("expected ~22.0462, got %v", got.Result)
	}
}

func TestConvertAPI_FoldsNameCase(t *testing.T) {
	rec := serve(t, quietHandler(), http.MethodGet, "/api/convert?category=Weight&value=10&from=KG&to=Lb", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := testsupport.MustDecodeJSON[dataResponse[Conversion]](t, rec.Body).Data
	if got.Category != "weight" || got.From != "kg" || got.To != "lb" {
		t.Fatalf("names not folded: %+v", got)
	}
	if math.Abs(got.Result-22.0462) > 1e-4 {
		t.Fatalf("expected ~22.0462, got %v", got.Result)
	}
}

func TestConvertAPI_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"unknown unit", "/api/convert?category=length&value=1&from=meter&to=furlong", http.StatusBadRequest, CodeUnknownUnit},
		{"unknown category", "/api/convert?category=density&value=1&from=a&to=b", http.StatusNotFound, CodeUnknownCategory},
		{"unsupported pair", "/api/convert?category=temperature&value=1&from=celsius&to=kg", http.StatusBadRequest, CodeUnsupportedPair},
		{"missing value", "/api/convert?category=time&from=sec&to=min", http.StatusBadRequest, CodeInvalidValue},
		{"non finite value", "/api/convert?category=time&value=Inf&from=sec&to=min", http.StatusBadRequest, CodeInvalidValue},
	}

	h := quietHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tt.target, nil)
			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			payload := testsupport.MustDecodeJSON[errorResponse](t, rec.Body)
			if payload.Error.Code != tt.code {
				t.Fatalf("expected code %q, got %q", tt.code, payload.Error.Code)
			}
			if payload.Error.Message == "" {
				t.Fatalf("expected error message")
			}
		})
	}
}

func TestConvertAPI_Msgpack(t *testing.T) {
	header := http.Header{"Accept": {"application/msgpack"}}
	rec := serve(t, quietHandler(), http.MethodGet, "/api/convert?category=temperature&value=100&from=celsius&to=fahrenheit", header)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != contentTypeMsgpack {
		t.Fatalf("unexpected content-type %q", ct)
	}

	dec := msgpack.NewDecoder(rec.Body)
	dec.SetCustomStructTag("json")
	var payload dataResponse[Conversion]
	if err := dec.Decode(&payload); err != nil {
		t.Fatalf("decode msgpack: %v", err)
	}
	want := Conversion{Category: "temperature", Value: 100, From: "celsius", To: "fahrenheit", Result: 212}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestWantsMsgpack(t *testing.T) {
	tests := map[string]bool{
		"":                                  false,
		"application/json":                  false,
		"text/html, application/msgpack;q=1": true,
		"application/x-msgpack":             true,
		"not a media type":                  false,
	}
	for accept, want := range tests {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", accept)
		if got := wantsMsgpack(req); got != want {
			t.Errorf("wantsMsgpack(%q): want %v, got %v", accept, want, got)
		}
	}
}

func TestCategoriesAPI(t *testing.T) {
	rec := serve(t, quietHandler(), http.MethodGet, "/api/categories?locale=es", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	payload := testsupport.MustDecodeJSON[dataResponse[[]CategoryInfo]](t, rec.Body)
	var names []string
	for _, info := range payload.Data {
		names = append(names, info.Name)
	}
	want := []string{"length", "temperature", "area", "volume", "weight", "time"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	first := payload.Data[0]
	if first.Label != "Longitud" || first.DefaultFrom != "meter" || first.DefaultTo != "centimeter" {
		t.Fatalf("unexpected length info: %+v", first)
	}
	if len(first.Units) != 3 {
		t.Fatalf("expected 3 length units, got %d", len(first.Units))
	}
	temp := payload.Data[1]
	if temp.DefaultFrom != "celsius" || temp.DefaultTo != "fahrenheit" {
		t.Fatalf("unexpected temperature defaults: %+v", temp)
	}
}

func TestOpenAPIEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	if _, err := RegisterRoutes(mux, "/tools", WithLogger(log.New(&bytes.Buffer{}, "", 0))); err != nil {
		t.Fatalf("register routes: %v", err)
	}

	rec := serve(t, mux, http.MethodGet, "/tools/api/openapi.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.OpenAPI == "" || len(doc.Paths) != 3 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "/tools" {
		t.Fatalf("unexpected servers: %+v", doc.Servers)
	}
}
