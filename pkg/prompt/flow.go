package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-unitconv/pkg/convert"
)

// Missing marks which request fields still need an answer.
type Missing struct {
	Category bool
	Value    bool
	From     bool
	To       bool
}

// MissingFrom reports the empty fields of req. A zero value counts as
// provided unless valueSet is false.
func MissingFrom(req convert.Request, valueSet bool) Missing {
	return Missing{
		Category: strings.TrimSpace(req.Category) == "",
		Value:    !valueSet,
		From:     strings.TrimSpace(req.From) == "",
		To:       strings.TrimSpace(req.To) == "",
	}
}

// Complete asks d for every field marked in missing, in category, value,
// from, to order. Unit prompts offer the category's units with its default
// pair preselected.
func Complete(ctx context.Context, d Driver, req convert.Request, missing Missing) (convert.Request, error) {
	if d == nil {
		return req, errors.New("prompt: driver is nil")
	}

	if missing.Category {
		category, err := askCategory(ctx, d)
		if err != nil {
			return req, err
		}
		req.Category = string(category)
	}

	category, err := convert.ParseCategory(req.Category)
	if err != nil {
		return req, err
	}

	if missing.Value {
		value, err := askValue(ctx, d)
		if err != nil {
			return req, err
		}
		req.Value = value
	}

	units, err := convert.Units(category)
	if err != nil {
		return req, err
	}
	defFrom, defTo := convert.DefaultPair(category)

	if missing.From {
		if req.From, err = askUnit(ctx, d, "From unit", units, defFrom); err != nil {
			return req, err
		}
	}
	if missing.To {
		if req.To, err = askUnit(ctx, d, "To unit", units, defTo); err != nil {
			return req, err
		}
	}
	return req, nil
}

func askCategory(ctx context.Context, d Driver) (convert.Category, error) {
	categories := convert.Categories()
	options := make([]string, len(categories))
	for i, category := range categories {
		options[i] = string(category)
	}
	idx, err := d.Select(ctx, SelectConfig{
		Message: "Category",
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(categories) {
		return "", fmt.Errorf("prompt: invalid category selection %d", idx)
	}
	return categories[idx], nil
}

func askValue(ctx context.Context, d Driver) (float64, error) {
	raw, err := d.Input(ctx, InputConfig{
		Message:   "Value",
		Default:   "0",
		Validator: validateNumber,
	})
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("prompt: parse value %q: %w", raw, err)
	}
	return value, nil
}

func askUnit(ctx context.Context, d Driver, message string, units []convert.Unit, def string) (string, error) {
	options := make([]string, len(units))
	descriptions := make([]string, len(units))
	defIndex := 0
	for i, unit := range units {
		options[i] = unit.Name
		descriptions[i] = unit.Label
		if unit.Name == def {
			defIndex = i
		}
	}
	idx, err := d.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		Descriptions: descriptions,
		DefaultIndex: defIndex,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("prompt: invalid unit selection %d", idx)
	}
	return options[idx], nil
}

func validateNumber(raw string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	return nil
}
