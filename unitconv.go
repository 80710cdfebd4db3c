// Package unitconv converts numeric values between units of length,
// temperature, area, volume, weight and time, and serves a small converter
// page for each category.
//
// The root package re-exports the common entry points:
//
//	result, err := unitconv.Convert("weight", 10, "kg", "lb")
//
//	mux := http.NewServeMux()
//	patterns, err := unitconv.RegisterRoutes(mux, "/tools")
package unitconv

import (
	"io/fs"

	"github.com/goliatone/go-unitconv/components/converter"
	"github.com/goliatone/go-unitconv/pkg/convert"
	"github.com/goliatone/go-unitconv/pkg/page"
)

// Category aliases convert.Category.
type Category = convert.Category

// Unit aliases convert.Unit.
type Unit = convert.Unit

// Request aliases convert.Request.
type Request = convert.Request

// Sentinel errors reported by Convert, usable with errors.Is.
var (
	ErrUnknownCategory = convert.ErrUnknownCategory
	ErrUnknownUnit     = convert.ErrUnknownUnit
	ErrUnsupportedPair = convert.ErrUnsupportedPair
)

// Convert converts value from one unit to another within category.
func Convert(category string, value float64, from, to string) (float64, error) {
	return convert.Convert(category, value, from, to)
}

// Categories lists the supported categories in display order.
func Categories() []Category {
	return convert.Categories()
}

// NewComponent constructs the HTTP converter component.
func NewComponent(fns ...converter.OptionFn) *converter.Component {
	return converter.New(fns...)
}

// RegisterRoutes mounts the converter pages and API under basePath.
func RegisterRoutes(mux converter.Mux, basePath string, fns ...converter.OptionFn) ([]string, error) {
	return converter.RegisterRoutes(mux, basePath, fns...)
}

// EmbeddedTemplates exposes the built-in page templates so callers can copy
// or extend them before pointing the server at a templates directory.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
