// Package catalog provides the fixed, ordered set of personal values users
// may tag entries with. The catalog is advisory input for the entry form
// and glossary page; the store does not enforce membership.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed values.yaml
var valuesYAML []byte

// Value is one catalog item with its glossary description.
type Value struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Catalog is an ordered, read-only list of values.
type Catalog struct {
	values []Value
	byName map[string]int
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	var values []Value
	if err := yaml.Unmarshal(valuesYAML, &values); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	byName := make(map[string]int, len(values))
	for i, v := range values {
		if _, dup := byName[v.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog value %q", v.Name)
		}
		byName[v.Name] = i
	}
	return &Catalog{values: values, byName: byName}, nil
}

// Values returns the catalog in its fixed order.
func (c *Catalog) Values() []Value { return c.values }

// Contains reports whether name is a catalog value.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Describe returns the glossary description for name, if present.
func (c *Catalog) Describe(name string) (string, bool) {
	i, ok := c.byName[name]
	if !ok {
		return "", false
	}
	return c.values[i].Description, true
}

// Len returns the number of catalog values.
func (c *Catalog) Len() int { return len(c.values) }
