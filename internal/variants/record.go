package variants

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OptionValue is the value chosen for one named option.
type OptionValue struct {
	Name  string
	Value string
}

// Selection maps option names to chosen values while keeping option order.
type Selection []OptionValue

// NewSelection pairs option names with a combination's values.
func NewSelection(names []string, combo Combination) Selection {
	selection := make(Selection, 0, len(names))
	for i, name := range names {
		if i >= len(combo) {
			break
		}
		selection = append(selection, OptionValue{Name: name, Value: combo[i]})
	}
	return selection
}

// Normalized folds repeated names onto their first position, keeping the last value.
func (s Selection) Normalized() Selection {
	out := make(Selection, 0, len(s))
	position := make(map[string]int, len(s))
	for _, ov := range s {
		if i, ok := position[ov.Name]; ok {
			out[i].Value = ov.Value
			continue
		}
		position[ov.Name] = len(out)
		out = append(out, ov)
	}
	return out
}

// Map returns the selection as a plain mapping.
func (s Selection) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, ov := range s {
		m[ov.Name] = ov.Value
	}
	return m
}

// Values returns the chosen values in option order.
func (s Selection) Values() Combination {
	combo := make(Combination, 0, len(s))
	for _, ov := range s {
		combo = append(combo, ov.Value)
	}
	return combo
}

// MarshalJSON encodes the selection as a JSON object whose keys follow option order.
func (s Selection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ov := range s.Normalized() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ov.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(ov.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, preserving key order.
func (s *Selection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("variants: options must be a JSON object")
	}
	var out Selection
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("variants: unexpected options key %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("variants: option %q: %w", key, err)
		}
		out = append(out, OptionValue{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML encodes the selection as an ordered YAML mapping.
func (s Selection) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ov := range s.Normalized() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ov.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ov.Value},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered YAML mapping.
func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("variants: options must be a mapping (line %d)", node.Line)
	}
	out := make(Selection, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, OptionValue{Name: node.Content[i].Value, Value: node.Content[i+1].Value})
	}
	*s = out
	return nil
}

// Record holds the per-combination field values of one variant group.
type Record struct {
	Label        string    `json:"label" yaml:"label"`
	Options      Selection `json:"options" yaml:"options"`
	SKU          string    `json:"sku,omitempty" yaml:"sku,omitempty"`
	Stock        string    `json:"stock,omitempty" yaml:"stock,omitempty"`
	RegularPrice string    `json:"regular_price,omitempty" yaml:"regular_price,omitempty"`
	SalePrice    string    `json:"sale_price,omitempty" yaml:"sale_price,omitempty"`
	Points       string    `json:"points,omitempty" yaml:"points,omitempty"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// OptionsJSON returns the encoded option mapping carried by the hidden options field.
func (r Record) OptionsJSON() string {
	data, err := json.Marshal(r.Options)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// carry copies the user-entered fields of prior onto r.
func (r Record) carry(prior Record) Record {
	r.SKU = prior.SKU
	r.Stock = prior.Stock
	r.RegularPrice = prior.RegularPrice
	r.SalePrice = prior.SalePrice
	r.Points = prior.Points
	r.Description = prior.Description
	r.ImageURL = prior.ImageURL
	return r
}
