// Package convert implements the unit conversion library: a fixed set of
// categories, each mapped to a pure conversion function.
//
// Table driven categories (length, area, volume, weight, time) scale through a
// base unit using the rates embedded under data/units.yaml. Temperature is
// handled by a small set of affine formulas between celsius, fahrenheit and
// kelvin.
//
//	result, err := convert.Convert("weight", 10, "kg", "lb")
//	if errors.Is(err, convert.ErrUnknownUnit) {
//		// handle the bad unit name
//	}
package convert
