package convert

// Converter is the conversion operation bound to a single category.
type Converter interface {
	Category() Category
	Units() []Unit
	Convert(value float64, from, to string) (float64, error)
}

// Request groups the inputs of a single conversion.
type Request struct {
	Category string  `json:"category" msgpack:"category"`
	Value    float64 `json:"value" msgpack:"value"`
	From     string  `json:"from" msgpack:"from"`
	To       string  `json:"to" msgpack:"to"`
}

// Convert converts value between two units of the named category.
func Convert(category string, value float64, from, to string) (float64, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return 0, err
	}
	conv, err := Lookup(c)
	if err != nil {
		return 0, err
	}
	return conv.Convert(value, from, to)
}

// ConvertRequest is Convert over a Request value.
func ConvertRequest(req Request) (float64, error) {
	return Convert(req.Category, req.Value, req.From, req.To)
}

// Lookup returns the converter bound to category.
func Lookup(category Category) (Converter, error) {
	if category == Temperature {
		return temperatureConverter{}, nil
	}
	if !category.Valid() {
		return nil, &UnknownCategoryError{Category: string(category)}
	}

	tables, err := DefaultTables()
	if err != nil {
		return nil, err
	}
	table, ok := tables[category]
	if !ok {
		return nil, &UnknownCategoryError{Category: string(category)}
	}
	return table, nil
}

// Units returns the units of category in display order.
func Units(category Category) ([]Unit, error) {
	conv, err := Lookup(category)
	if err != nil {
		return nil, err
	}
	return conv.Units(), nil
}

// DefaultPair returns the first and second unit of category, used when a
// caller supplies no units. Categories with a single unit pair it with itself.
func DefaultPair(category Category) (string, string) {
	units, err := Units(category)
	if err != nil || len(units) == 0 {
		return "", ""
	}
	if len(units) == 1 {
		return units[0].Name, units[0].Name
	}
	return units[0].Name, units[1].Name
}
