package convert

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/units.yaml
var dataFS embed.FS

const defaultTablesPath = "data/units.yaml"

var (
	defaultOnce   sync.Once
	defaultTables map[Category]*Table
	defaultErr    error
)

// Unit describes a single unit a category accepts. Rate is the number of base
// units one of this unit equals; it is zero for temperature units.
type Unit struct {
	Name  string  `json:"name" yaml:"name" msgpack:"name"`
	Label string  `json:"label" yaml:"label" msgpack:"label"`
	Rate  float64 `json:"rate,omitempty" yaml:"rate" msgpack:"rate,omitempty"`
}

// Table is an immutable rate table for a linear category.
type Table struct {
	category Category
	base     string
	units    []Unit
	index    map[string]int
}

var _ Converter = (*Table)(nil)

// Category returns the category the table belongs to.
func (t *Table) Category() Category { return t.category }

// Base returns the name of the unit every rate is expressed in.
func (t *Table) Base() string { return t.base }

// Units returns a copy of the table's units in declaration order.
func (t *Table) Units() []Unit {
	return append([]Unit{}, t.units...)
}

// Rate returns the rate for name. Only missing entries report false.
func (t *Table) Rate(name string) (float64, bool) {
	idx, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.units[idx].Rate, true
}

// Convert scales value from one unit to another through the base unit.
func (t *Table) Convert(value float64, from, to string) (float64, error) {
	fromRate, fromOK := t.Rate(from)
	toRate, toOK := t.Rate(to)

	if !fromOK || !toOK {
		unknown := make([]string, 0, 2)
		if !fromOK {
			unknown = append(unknown, from)
		}
		if !toOK {
			unknown = append(unknown, to)
		}
		return 0, &UnknownUnitError{Category: t.category, Units: unknown}
	}

	if from == to {
		return value, nil
	}
	return value * fromRate / toRate, nil
}

// DefaultTables returns the embedded rate tables keyed by category. The data
// is parsed once per process.
func DefaultTables() (map[Category]*Table, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultTablesPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		tables, err := LoadTables(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultTables = tables
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	out := make(map[Category]*Table, len(defaultTables))
	for category, table := range defaultTables {
		out[category] = table
	}
	return out, nil
}

type tablesFile struct {
	Categories []tableFile `yaml:"categories"`
}

type tableFile struct {
	Category string `yaml:"category"`
	Base     string `yaml:"base"`
	Units    []Unit `yaml:"units"`
}

// LoadTables parses a YAML rate document. Every rate must be positive, unit
// names must be unique per category and the base unit must have rate 1.
func LoadTables(r io.Reader) (map[Category]*Table, error) {
	if r == nil {
		return nil, errors.New("convert: missing reader")
	}

	var doc tablesFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("convert: rate document is empty")
		}
		return nil, fmt.Errorf("convert: parse rates: %w", err)
	}

	tables := make(map[Category]*Table, len(doc.Categories))
	for _, raw := range doc.Categories {
		table, err := newTable(raw)
		if err != nil {
			return nil, err
		}
		if _, exists := tables[table.category]; exists {
			return nil, fmt.Errorf("convert: duplicate category %q", table.category)
		}
		tables[table.category] = table
	}
	return tables, nil
}

func newTable(raw tableFile) (*Table, error) {
	category, err := ParseCategory(raw.Category)
	if err != nil {
		return nil, err
	}
	if category == Temperature {
		return nil, fmt.Errorf("convert: %s is not rate based", category)
	}

	table := &Table{
		category: category,
		base:     raw.Base,
		units:    make([]Unit, 0, len(raw.Units)),
		index:    make(map[string]int, len(raw.Units)),
	}
	if table.base == "" {
		return nil, fmt.Errorf("convert: %s table has no base unit", category)
	}

	for _, unit := range raw.Units {
		name := unit.Name
		if name == "" {
			return nil, fmt.Errorf("convert: %s table defines a unit without a name", category)
		}
		if name != strings.TrimSpace(name) {
			return nil, fmt.Errorf("convert: %s unit %q has surrounding whitespace", category, name)
		}
		if _, exists := table.index[name]; exists {
			return nil, fmt.Errorf("convert: %s table defines %q twice", category, name)
		}
		if !(unit.Rate > 0) {
			return nil, fmt.Errorf("convert: %s unit %q has non-positive rate %v", category, name, unit.Rate)
		}
		label := strings.TrimSpace(unit.Label)
		if label == "" {
			label = name
		}
		table.index[name] = len(table.units)
		table.units = append(table.units, Unit{Name: name, Label: label, Rate: unit.Rate})
	}

	rate, ok := table.Rate(table.base)
	if !ok {
		return nil, fmt.Errorf("convert: %s base unit %q is not defined", category, table.base)
	}
	if rate != 1 {
		return nil, fmt.Errorf("convert: %s base unit %q must have rate 1, got %v", category, table.base, rate)
	}
	return table, nil
}
