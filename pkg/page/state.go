package page

import (
	"github.com/goliatone/go-unitconv/pkg/convert"
)

// State is the fully resolved input of one render.
type State struct {
	Category convert.Category
	Value    float64
	From     string
	To       string
}

// Resolve applies category defaults to q. Queries without a unit pair use
// convert.DefaultPair.
func Resolve(category convert.Category, q Query) State {
	state := State{
		Category: category,
		Value:    q.Value,
		From:     q.From,
		To:       q.To,
	}
	if !q.HasUnits() {
		state.From, state.To = convert.DefaultPair(category)
	}
	return state
}

// Outcome is the result of running the conversion for a State.
type Outcome struct {
	Result float64
	Err    error
}

// Failed reports whether the conversion failed.
func (o Outcome) Failed() bool { return o.Err != nil }

// Calculate runs the conversion for s.
func Calculate(s State) Outcome {
	result, err := convert.Convert(string(s.Category), s.Value, s.From, s.To)
	return Outcome{Result: result, Err: err}
}
