package page

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-unitconv/pkg/convert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Query
	}{
		{name: "empty", query: "", want: Query{}},
		{name: "value and units", query: "val=12.5&units=meter:kilometer", want: Query{Value: 12.5, From: "meter", To: "kilometer"}},
		{name: "unparseable value", query: "val=abc&units=kg:lb", want: Query{From: "kg", To: "lb"}},
		{name: "nan value", query: "val=NaN", want: Query{}},
		{name: "missing half", query: "val=3&units=meter:", want: Query{Value: 3}},
		{name: "no separator", query: "units=meter", want: Query{}},
		{name: "extra parts ignored", query: "units=meter:kilometer:x", want: Query{From: "meter", To: "kilometer"}},
		{name: "empty second part", query: "units=meter::kilometer", want: Query{}},
		{name: "form fields override units", query: "units=meter:kilometer&from=kg&to=g", want: Query{From: "kg", To: "g"}},
		{name: "single form field ignored", query: "units=meter:kilometer&from=kg", want: Query{From: "meter", To: "kilometer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			got := ParseQuery(values, Params{})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseQuery_CustomParams(t *testing.T) {
	values := url.Values{"amount": {"7"}, "pair": {"sec:min"}}
	got := ParseQuery(values, Params{Value: "amount", Units: "pair"})
	want := Query{Value: 7, From: "sec", To: "min"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryEncode(t *testing.T) {
	q := Query{Value: 1.25, From: "meter", To: "centimeter"}
	if got, want := q.Encode(Params{}).Encode(), "units=meter%3Acentimeter&val=1.25"; got != want {
		t.Fatalf("encode: want %q, got %q", want, got)
	}

	bare := Query{Value: 2}
	if got, want := bare.Encode(Params{}).Encode(), "val=2"; got != want {
		t.Fatalf("encode without units: want %q, got %q", want, got)
	}
}

func TestResolve_AppliesDefaultPair(t *testing.T) {
	got := Resolve(convert.Temperature, Query{Value: 100})
	want := State{Category: convert.Temperature, Value: 100, From: "celsius", To: "fahrenheit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	explicit := Resolve(convert.Length, Query{Value: 1, From: "kilometer", To: "meter"})
	if explicit.From != "kilometer" || explicit.To != "meter" {
		t.Fatalf("explicit units replaced: %+v", explicit)
	}
}

func TestCalculate(t *testing.T) {
	out := Calculate(State{Category: convert.Temperature, Value: 100, From: "celsius", To: "fahrenheit"})
	if out.Failed() {
		t.Fatalf("unexpected failure: %v", out.Err)
	}
	if out.Result != 212 {
		t.Fatalf("want 212, got %v", out.Result)
	}

	failed := Calculate(State{Category: convert.Length, Value: 1, From: "meter", To: "furlong"})
	if !failed.Failed() {
		t.Fatalf("expected failure for unknown unit")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:      "0",
		1000:   "1000",
		0.5:    "0.5",
		-40:    "-40",
		212:    "212",
		1e21:   "1e+21",
		1e-7:   "1e-07",
		273.15: "273.15",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v): want %q, got %q", in, want, got)
		}
	}
}
