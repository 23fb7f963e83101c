package openapi

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Number is a JSON number literal kept exactly as it was written in the source,
// so large integers survive serialization without turning into floats.
type Number string

// IsInteger reports whether the literal has no fraction or exponent.
func (n Number) IsInteger() bool {
	return n != "" && !strings.ContainsAny(string(n), ".eE")
}

// MarshalJSON writes the literal unchanged.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n), nil
}

// MarshalYAML writes the literal as a plain int or float scalar.
func (n Number) MarshalYAML() (interface{}, error) {
	tag := "!!float"
	if n.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(n)}, nil
}
