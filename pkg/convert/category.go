package convert

import "strings"

// Category identifies one of the supported conversion families.
type Category string

const (
	Length      Category = "length"
	Temperature Category = "temperature"
	Area        Category = "area"
	Volume      Category = "volume"
	Weight      Category = "weight"
	Time        Category = "time"
)

var categoryOrder = []Category{Length, Temperature, Area, Volume, Weight, Time}

// Categories returns every supported category in display order.
func Categories() []Category {
	return append([]Category{}, categoryOrder...)
}

// ParseCategory returns the category named exactly raw. Anything else fails
// with an *UnknownCategoryError.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", &UnknownCategoryError{Category: raw}
	}
	return c, nil
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// Title returns the category name with its first letter upper-cased.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}
