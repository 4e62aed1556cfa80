package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrUnknownForm is returned by ParseForm for unsupported names.
var ErrUnknownForm = errors.New("unknown export form")

// Form selects how leaves are written.
type Form int

const (
	// FormFull writes every leaf as {"value": ..., "type": ...}.
	FormFull Form = iota
	// FormReduced writes every leaf as its bare value.
	FormReduced
)

// ParseForm parses "full" or "reduced".
func ParseForm(s string) (Form, error) {
	switch s {
	case "full", "":
		return FormFull, nil
	case "reduced", "values":
		return FormReduced, nil
	default:
		return FormFull, fmt.Errorf("%w: %q", ErrUnknownForm, s)
	}
}

func (f Form) String() string {
	if f == FormReduced {
		return "reduced"
	}
	return "full"
}

// MarshalJSON writes the tree in full form, compact.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, t.root, FormFull); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON writes the tree as UTF-8 JSON indented with two spaces. Characters
// such as <, > and & are written as-is.
func (t *Tree) JSON(form Form) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSON(&compact, t.root, form); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node, form Form) error {
	if n.IsLeaf() {
		if form == FormReduced {
			return writeJSONValue(buf, n.token.Value)
		}
		buf.WriteString(`{"value":`)
		if err := writeJSONValue(buf, n.token.Value); err != nil {
			return err
		}
		buf.WriteString(`,"type":`)
		if err := writeJSONValue(buf, n.token.Type); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	}

	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSON(buf, n.children[key], form); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// YAML writes the tree as a YAML document indented with two spaces, keeping key order.
func (t *Tree) YAML(form Form) ([]byte, error) {
	root, err := yamlNode(t.root, form)
	if err != nil {
		return nil, err
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{root},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func yamlNode(n *Node, form Form) (*yaml.Node, error) {
	if n.IsLeaf() {
		value := new(yaml.Node)
		if err := value.Encode(n.token.Value); err != nil {
			return nil, err
		}
		if form == FormReduced {
			return value, nil
		}
		return &yaml.Node{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				yamlScalarNode("value"), value,
				yamlScalarNode("type"), yamlScalarNode(string(n.token.Type)),
			},
		}, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range n.keys {
		child, err := yamlNode(n.children[key], form)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		node.Content = append(node.Content, yamlScalarNode(key), child)
	}
	return node, nil
}

func yamlScalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// Msgpack writes the tree as nested msgpack maps, keeping key order.
// Struct leaf values use their json field names.
func (t *Tree) Msgpack(form Form) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")

	if err := encodeMsgpack(enc, t.root, form); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMsgpack(enc *msgpack.Encoder, n *Node, form Form) error {
	if n.IsLeaf() {
		if form == FormReduced {
			return enc.Encode(n.token.Value)
		}
		if err := enc.EncodeMapLen(2); err != nil {
			return err
		}
		if err := enc.EncodeString("value"); err != nil {
			return err
		}
		if err := enc.Encode(n.token.Value); err != nil {
			return err
		}
		if err := enc.EncodeString("type"); err != nil {
			return err
		}
		return enc.EncodeString(string(n.token.Type))
	}

	if err := enc.EncodeMapLen(len(n.keys)); err != nil {
		return err
	}
	for _, key := range n.keys {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := encodeMsgpack(enc, n.children[key], form); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}
