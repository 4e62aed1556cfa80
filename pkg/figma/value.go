package figma

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedValue is returned when a raw variable value has none of the known shapes.
var ErrUnsupportedValue = errors.New("unsupported variable value")

// ValueKind tags the shape of a raw Value.
type ValueKind int

// Raw value shapes.
const (
	KindNone ValueKind = iota
	KindColor
	KindNumber
	KindText
	KindBoolean
	KindAlias
)

func (k ValueKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	case KindAlias:
		return "alias"
	default:
		return "none"
	}
}

// Value is a raw per-mode value cell: a literal color, number, text or
// boolean, or a structured alias to another variable. Only the field that
// matches Kind is meaningful.
type Value struct {
	Kind   ValueKind
	Color  Color
	Number float64
	Text   string
	Bool   bool
	Alias  VariableAlias
}

// ColorValue returns a color literal.
func ColorValue(c Color) Value { return Value{Kind: KindColor, Color: c} }

// NumberValue returns a number literal.
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// TextValue returns a string literal.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// BoolValue returns a boolean literal.
func BoolValue(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// AliasValue returns a structured alias pointing at the variable with the given id.
func AliasValue(id string) Value {
	return Value{Kind: KindAlias, Alias: VariableAlias{Type: AliasType, ID: id}}
}

// Interface returns the value as a plain Go value: Color, float64, string,
// bool, VariableAlias or nil.
func (v Value) Interface() any {
	switch v.Kind {
	case KindColor:
		return v.Color
	case KindNumber:
		return v.Number
	case KindText:
		return v.Text
	case KindBoolean:
		return v.Bool
	case KindAlias:
		return v.Alias
	default:
		return nil
	}
}

// rawObject is the union of the object shapes a value may take.
type rawObject struct {
	Type string   `json:"type" yaml:"type"`
	ID   string   `json:"id" yaml:"id"`
	R    *float64 `json:"r" yaml:"r"`
	G    *float64 `json:"g" yaml:"g"`
	B    *float64 `json:"b" yaml:"b"`
	A    *float64 `json:"a" yaml:"a"`
}

func (o rawObject) value() (Value, error) {
	if o.Type == AliasType {
		return AliasValue(o.ID), nil
	}
	if o.R == nil || o.G == nil || o.B == nil {
		return Value{}, fmt.Errorf("%w: object is neither an alias nor a color", ErrUnsupportedValue)
	}
	c := Color{R: *o.R, G: *o.G, B: *o.B, A: 1}
	if o.A != nil {
		c.A = *o.A
	}
	return ColorValue(c), nil
}

// UnmarshalJSON decodes any of the raw value shapes.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrUnsupportedValue)
	}

	switch data[0] {
	case 'n':
		*v = Value{}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case '{':
		var obj rawObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		parsed, err := obj.value()
		if err != nil {
			return err
		}
		*v = parsed
	case '[':
		return fmt.Errorf("%w: arrays are not variable values", ErrUnsupportedValue)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*v = NumberValue(f)
	}

	return nil
}

// MarshalJSON encodes the value in the same shape the API uses.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalYAML decodes any of the raw value shapes from a YAML node.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			*v = Value{}
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*v = BoolValue(b)
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return err
			}
			*v = NumberValue(f)
		default:
			*v = TextValue(node.Value)
		}
	case yaml.MappingNode:
		var obj rawObject
		if err := node.Decode(&obj); err != nil {
			return err
		}
		parsed, err := obj.value()
		if err != nil {
			return err
		}
		*v = parsed
	default:
		return fmt.Errorf("%w: line %d", ErrUnsupportedValue, node.Line)
	}

	return nil
}

// MarshalYAML encodes the value as its plain Go form.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
