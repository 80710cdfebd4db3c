package page

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-unitconv/pkg/convert"
	"github.com/goliatone/go-unitconv/pkg/i18n"
)

func TestBuild_DefaultLocale(t *testing.T) {
	state := State{Category: convert.Length, Value: 1500, From: "meter", To: "kilometer"}
	view := Build(state, Calculate(state), BuildOptions{})

	if view.Title != "Length Conversion" {
		t.Fatalf("title: got %q", view.Title)
	}
	if view.Description != "Perform length conversions quickly and easily." {
		t.Fatalf("description: got %q", view.Description)
	}
	if view.Lang != "en" {
		t.Fatalf("lang: got %q", view.Lang)
	}
	if view.Result.Failed || view.Result.Text != "1.5" {
		t.Fatalf("result: %+v", view.Result)
	}
	if view.Result.ShareURL != "/converter/length?units=meter%3Akilometer&val=1500" {
		t.Fatalf("share url: got %q", view.Result.ShareURL)
	}
	if view.Form.Action != "/converter/length" || view.Form.Value != "1500" {
		t.Fatalf("form: %+v", view.Form)
	}

	var hrefs []string
	var active []string
	for _, tab := range view.Tabs {
		hrefs = append(hrefs, tab.Href)
		if tab.Active {
			active = append(active, tab.Category)
		}
	}
	wantHrefs := []string{
		"/converter/length",
		"/converter/temperature",
		"/converter/area",
		"/converter/volume",
		"/converter/weight",
		"/converter/time",
	}
	if diff := cmp.Diff(wantHrefs, hrefs); diff != "" {
		t.Fatalf("tab hrefs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"length"}, active); diff != "" {
		t.Fatalf("active tabs mismatch (-want +got):\n%s", diff)
	}

	if len(view.Sidebar.Tips) != 3 || view.Sidebar.Title != "Conversion Tips" {
		t.Fatalf("sidebar: %+v", view.Sidebar)
	}
	if len(view.Form.Units) != 3 || view.Form.Units[0].Name != "meter" {
		t.Fatalf("unit options: %+v", view.Form.Units)
	}
}

func TestBuild_FailureHidesError(t *testing.T) {
	state := State{Category: convert.Length, Value: 1, From: "meter", To: "furlong"}
	outcome := Calculate(state)
	view := Build(state, outcome, BuildOptions{})

	if !view.Result.Failed {
		t.Fatalf("expected failed result")
	}
	if view.Result.Text != "" || view.Result.ShareURL != "" {
		t.Fatalf("failed result leaked output: %+v", view.Result)
	}
	if view.Result.ErrorText != "Error in conversion" {
		t.Fatalf("error text: got %q", view.Result.ErrorText)
	}
	if strings.Contains(view.Result.ErrorText, "furlong") {
		t.Fatalf("error text exposes details: %q", view.Result.ErrorText)
	}
	if !errors.Is(outcome.Err, convert.ErrUnknownUnit) {
		t.Fatalf("outcome error: %v", outcome.Err)
	}
}

func TestBuild_LocalePrefix(t *testing.T) {
	catalog, err := i18n.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	state := State{Category: convert.Length, Value: 1, From: "meter", To: "centimeter"}
	view := Build(state, Calculate(state), BuildOptions{
		Locale:     "es",
		PathLocale: true,
		Translator: catalog,
		BasePath:   "/tools",
	})

	if view.Title != "Conversión de Longitud" {
		t.Fatalf("title: got %q", view.Title)
	}
	if view.Description != "Realiza conversiones de longitud de forma rápida y sencilla." {
		t.Fatalf("description: got %q", view.Description)
	}
	if view.Tabs[1].Href != "/tools/es/converter/temperature" {
		t.Fatalf("tab href: got %q", view.Tabs[1].Href)
	}
	if view.Form.Action != "/tools/es/converter/length" {
		t.Fatalf("action: got %q", view.Form.Action)
	}
	if view.Result.Text != "100" {
		t.Fatalf("result: got %q", view.Result.Text)
	}
}

func TestBuild_CustomTipsAreSanitized(t *testing.T) {
	state := Resolve(convert.Time, Query{Value: 1})
	view := Build(state, Calculate(state), BuildOptions{
		Tips: []string{"<em>Hours</em> are 3600 seconds<script>alert(1)</script>", "<script>x</script>"},
	})

	want := []string{"<em>Hours</em> are 3600 seconds"}
	if diff := cmp.Diff(want, view.Sidebar.Tips); diff != "" {
		t.Fatalf("tips mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNotFound(t *testing.T) {
	view := BuildNotFound("density", BuildOptions{})
	if view.Title != "Unknown conversion" {
		t.Fatalf("title: got %q", view.Title)
	}
	if view.Description != `"density" is not a supported conversion type.` {
		t.Fatalf("description: got %q", view.Description)
	}
	if len(view.Tabs) != len(convert.Categories()) {
		t.Fatalf("expected a tab per category, got %d", len(view.Tabs))
	}
	for _, tab := range view.Tabs {
		if tab.Active {
			t.Fatalf("no tab should be active: %+v", tab)
		}
	}
}

func TestCategoryPath(t *testing.T) {
	tests := []struct {
		base, locale, route string
		want                string
	}{
		{"", "", "/converter", "/converter/area"},
		{"/", "", "converter", "/converter/area"},
		{"/app/", "es", "/converter", "/app/es/converter/area"},
	}
	for _, tt := range tests {
		if got := CategoryPath(tt.base, tt.locale, tt.route, convert.Area); got != tt.want {
			t.Errorf("CategoryPath(%q, %q, %q): want %q, got %q", tt.base, tt.locale, tt.route, tt.want, got)
		}
	}
}
