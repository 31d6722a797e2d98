package options

import (
	"fmt"
	"slices"

	"function-frame/internal/directive"
)

// entry is one key with its tagged value.
type entry struct {
	key   string
	value directive.Value
}

// Configuration is the ordered set of assignments of one directive.
type Configuration struct {
	entries []entry
}

// Build collects assignments into a Configuration, preserving their order.
func Build(assignments []directive.Assignment) *Configuration {
	c := &Configuration{entries: make([]entry, 0, len(assignments))}
	for _, a := range assignments {
		c.entries = append(c.entries, entry{key: a.Key, value: a.Value})
	}

	return c
}

// Len returns the number of stored assignments.
func (c *Configuration) Len() int {
	return len(c.entries)
}

// Unknown returns the keys of c that are not frame options, in the order
// they were written and without repeats.
func (c *Configuration) Unknown() []string {
	var keys []string

	for _, e := range c.entries {
		if slices.Contains(known, e.key) || slices.Contains(keys, e.key) {
			continue
		}

		keys = append(keys, e.key)
	}

	return keys
}

// NotFoundError reports that no assignment of the requested kind has the name.
type NotFoundError struct {
	Name string
	Kind directive.ValueKind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("expected argument with name '%s', found none", e.Name)
}

// Lookup returns the value of the first assignment named name whose value
// has the given kind.
func (c *Configuration) Lookup(name string, kind directive.ValueKind) (directive.Value, error) {
	for _, e := range c.entries {
		if e.key == name && e.value.Kind() == kind {
			return e.value, nil
		}
	}

	return directive.Value{}, &NotFoundError{Name: name, Kind: kind}
}

// String looks up a string-valued option.
func (c *Configuration) String(name string) (string, error) {
	v, err := c.Lookup(name, directive.KindString)
	if err != nil {
		return "", err
	}

	return v.Str(), nil
}

// Uint looks up a uint-valued option.
func (c *Configuration) Uint(name string) (uint, error) {
	v, err := c.Lookup(name, directive.KindUint)
	if err != nil {
		return 0, err
	}

	return v.Uint(), nil
}

// Bool looks up a bool-valued option.
func (c *Configuration) Bool(name string) (bool, error) {
	v, err := c.Lookup(name, directive.KindBool)
	if err != nil {
		return false, err
	}

	return v.Bool(), nil
}
