package figma

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeObject walks a JSON object member by member, in document order.
// A JSON null is treated as an empty object.
func decodeObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	_, err = dec.Token()
	return err
}

// encodeObject writes key/value pairs as a JSON object in the given order.
func encodeObject(n int, pair func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := pair(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a mode-id keyed object, keeping member order.
func (m *ModeValues) UnmarshalJSON(data []byte) error {
	var values ModeValues
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var v Value
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("mode %s: %w", key, err)
		}
		values = append(values, ModeValue{ModeID: key, Value: v})
		return nil
	})
	if err != nil {
		return err
	}
	*m = values
	return nil
}

// MarshalJSON encodes the values as a mode-id keyed object, keeping order.
func (m ModeValues) MarshalJSON() ([]byte, error) {
	return encodeObject(len(m), func(i int) (string, any) {
		return m[i].ModeID, m[i].Value
	})
}

// UnmarshalYAML decodes a mode-id keyed mapping, keeping member order.
func (m *ModeValues) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("valuesByMode: expected mapping at line %d", node.Line)
	}

	values := make(ModeValues, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var v Value
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("mode %s: %w", key, err)
		}
		values = append(values, ModeValue{ModeID: key, Value: v})
	}
	*m = values
	return nil
}

// MarshalYAML encodes the values as an ordered mapping.
func (m ModeValues) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, mv := range m {
		var value yaml.Node
		if err := value.Encode(mv.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: mv.ModeID},
			&value,
		)
	}
	return node, nil
}

// OrderedVariables decodes the id-keyed variables object of the API, keeping order.
type OrderedVariables []Variable

// UnmarshalJSON implements json.Unmarshaler.
func (o *OrderedVariables) UnmarshalJSON(data []byte) error {
	var vars OrderedVariables
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var v Variable
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("variable %s: %w", key, err)
		}
		if v.ID == "" {
			v.ID = key
		}
		vars = append(vars, v)
		return nil
	})
	if err != nil {
		return err
	}
	*o = vars
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OrderedVariables) MarshalJSON() ([]byte, error) {
	return encodeObject(len(o), func(i int) (string, any) {
		return o[i].ID, o[i]
	})
}

// OrderedCollections decodes the id-keyed collections object of the API, keeping order.
type OrderedCollections []VariableCollection

// UnmarshalJSON implements json.Unmarshaler.
func (o *OrderedCollections) UnmarshalJSON(data []byte) error {
	var cols OrderedCollections
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var c VariableCollection
		if err := json.Unmarshal(raw, &c); err != nil {
			return fmt.Errorf("collection %s: %w", key, err)
		}
		if c.ID == "" {
			c.ID = key
		}
		cols = append(cols, c)
		return nil
	})
	if err != nil {
		return err
	}
	*o = cols
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OrderedCollections) MarshalJSON() ([]byte, error) {
	return encodeObject(len(o), func(i int) (string, any) {
		return o[i].ID, o[i]
	})
}

// UnmarshalJSON accepts both the boolean remote flag of the REST API and
// an object carrying the target id.
func (r *RemoteRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain RemoteRef
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*r = RemoteRef(p)
		return nil
	}

	var flag bool
	if err := json.Unmarshal(data, &flag); err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	*r = RemoteRef{}
	return nil
}

// UnmarshalYAML accepts both a boolean flag and a mapping with an id.
func (r *RemoteRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		type plain RemoteRef
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*r = RemoteRef(p)
		return nil
	}

	var flag bool
	if err := node.Decode(&flag); err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	*r = RemoteRef{}
	return nil
}
