package tiled

import (
	"fmt"
	"strconv"
)

// RefPrefix marks an object property that explicitly carries the value for a
// layer or class level property of the same base name.
const RefPrefix = "ref_"

// Property is a typed Tiled custom property.
type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Resolve looks up a property by precedence: object, then layer, then class.
//
// On the object, a property named ref_<name> wins over <name> itself, which
// only matches when it is not typed bool. Boolean object flags are skipped so
// that a layer or class default still governs the styling they switch on.
func Resolve(object, layer, class []Property, name string) (Property, bool) {
	if p, ok := find(object, RefPrefix+name); ok {
		return p, true
	}
	for _, p := range object {
		if p.Name == name && p.Type != "bool" {
			return p, true
		}
	}
	if p, ok := find(layer, name); ok {
		return p, true
	}
	if p, ok := find(class, name); ok {
		return p, true
	}
	return Property{}, false
}

func find(props []Property, name string) (Property, bool) {
	for _, p := range props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Truthy reports whether the value would count as set: not nil, false, zero
// or the empty string.
func (p Property) Truthy() bool {
	switch v := p.Value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}

func (p Property) String() string {
	switch v := p.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Float returns the numeric value. Numeric strings are accepted since Tiled
// users often type numbers into string properties.
func (p Property) Float() (float64, bool) {
	switch v := p.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
