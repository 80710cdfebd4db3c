package page

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Params names the navigation parameters the page reads.
type Params struct {
	Value string
	Units string
	From  string
	To    string
}

// DefaultParams returns the parameter names used by the converter links:
// val, units (as "from:to"), and the form's from/to fields.
func DefaultParams() Params {
	return Params{Value: "val", Units: "units", From: "from", To: "to"}
}

func (p Params) withDefaults() Params {
	def := DefaultParams()
	if strings.TrimSpace(p.Value) == "" {
		p.Value = def.Value
	}
	if strings.TrimSpace(p.Units) == "" {
		p.Units = def.Units
	}
	if strings.TrimSpace(p.From) == "" {
		p.From = def.From
	}
	if strings.TrimSpace(p.To) == "" {
		p.To = def.To
	}
	return p
}

// Query is the parsed navigation state. From and To are either both set or
// both empty.
type Query struct {
	Value float64
	From  string
	To    string
}

// HasUnits reports whether the query carries an explicit unit pair.
func (q Query) HasUnits() bool {
	return q.From != "" && q.To != ""
}

// ParseQuery reads the value and unit pair from values. An absent or
// unparseable value is 0. The units token is split on its first ":"; when
// either half is empty both are dropped. Non-empty from/to form fields take
// precedence over the units token.
func ParseQuery(values url.Values, params Params) Query {
	params = params.withDefaults()

	var q Query
	if raw := strings.TrimSpace(values.Get(params.Value)); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(parsed) {
			q.Value = parsed
		}
	}

	if from, to, ok := splitUnits(values.Get(params.Units)); ok {
		q.From, q.To = from, to
	}

	from := strings.TrimSpace(values.Get(params.From))
	to := strings.TrimSpace(values.Get(params.To))
	if from != "" && to != "" {
		q.From, q.To = from, to
	}
	return q
}

// splitUnits takes the first two ":"-separated parts of raw and ignores the rest.
func splitUnits(raw string) (string, string, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return "", "", false
	}
	from := strings.TrimSpace(parts[0])
	to := strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return "", "", false
	}
	return from, to, true
}

// Encode renders q back into navigation parameters (val and units).
func (q Query) Encode(params Params) url.Values {
	params = params.withDefaults()

	values := url.Values{}
	values.Set(params.Value, strconv.FormatFloat(q.Value, 'f', -1, 64))
	if q.HasUnits() {
		values.Set(params.Units, q.From+":"+q.To)
	}
	return values
}
