package convert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCategory is matched by errors.Is for *UnknownCategoryError.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownUnit is matched by errors.Is for *UnknownUnitError.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnsupportedPair is matched by errors.Is for *UnsupportedPairError.
	ErrUnsupportedPair = errors.New("unsupported unit pair")
)

// UnknownCategoryError reports a category outside the supported set.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("convert: unknown category %q", e.Category)
}

func (e *UnknownCategoryError) Unwrap() error { return ErrUnknownCategory }

// UnknownUnitError lists the unit names a table driven category does not
// define.
type UnknownUnitError struct {
	Category Category
	Units    []string
}

func (e *UnknownUnitError) Error() string {
	quoted := make([]string, 0, len(e.Units))
	for _, unit := range e.Units {
		quoted = append(quoted, fmt.Sprintf("%q", unit))
	}
	return fmt.Sprintf("convert: unknown %s unit %s", e.Category, strings.Join(quoted, ", "))
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// UnsupportedPairError reports a temperature direction with no formula.
type UnsupportedPairError struct {
	Category Category
	From     string
	To       string
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("convert: %s conversion not implemented for %q to %q", e.Category, e.From, e.To)
}

func (e *UnsupportedPairError) Unwrap() error { return ErrUnsupportedPair }
