package convert

const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
	Kelvin     = "kelvin"
)

var temperatureUnits = []Unit{
	{Name: Celsius, Label: "Celsius"},
	{Name: Fahrenheit, Label: "Fahrenheit"},
	{Name: Kelvin, Label: "Kelvin"},
}

type temperatureConverter struct{}

var _ Converter = temperatureConverter{}

func (temperatureConverter) Category() Category { return Temperature }

func (temperatureConverter) Units() []Unit {
	return append([]Unit{}, temperatureUnits...)
}

// Convert applies the affine formula for the (from, to) direction. Identity is
// only defined for the three known units.
func (temperatureConverter) Convert(value float64, from, to string) (float64, error) {
	switch from {
	case Celsius:
		switch to {
		case Celsius:
			return value, nil
		case Fahrenheit:
			return value*9/5 + 32, nil
		case Kelvin:
			return value + 273.15, nil
		}
	case Fahrenheit:
		switch to {
		case Fahrenheit:
			return value, nil
		case Celsius:
			return (value - 32) * 5 / 9, nil
		case Kelvin:
			return (value-32)*5/9 + 273.15, nil
		}
	case Kelvin:
		switch to {
		case Kelvin:
			return value, nil
		case Celsius:
			return value - 273.15, nil
		case Fahrenheit:
			return (value-273.15)*9/5 + 32, nil
		}
	}

	return 0, &UnsupportedPairError{Category: Temperature, From: from, To: to}
}
