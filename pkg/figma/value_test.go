package figma

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
	}{
		{"color", `{"r":0,"g":0.5,"b":1,"a":0.25}`, ColorValue(Color{R: 0, G: 0.5, B: 1, A: 0.25})},
		{"color without alpha", `{"r":1,"g":1,"b":1}`, ColorValue(Color{R: 1, G: 1, B: 1, A: 1})},
		{"number", `12.5`, NumberValue(12.5)},
		{"negative number", `-3`, NumberValue(-3)},
		{"text", `"Inter"`, TextValue("Inter")},
		{"boolean", `true`, BoolValue(true)},
		{"alias", `{"type":"VARIABLE_ALIAS","id":"VariableID:9"}`, AliasValue("VariableID:9")},
		{"null", `null`, Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Value
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueUnmarshalJSONUnsupported(t *testing.T) {
	for _, in := range []string{`[1,2]`, `{"foo":"bar"}`} {
		var v Value
		err := json.Unmarshal([]byte(in), &v)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrUnsupportedValue), "%s: %v", in, err)
	}
}

func TestValueUnmarshalYAML(t *testing.T) {
	doc := `
color: {r: 1, g: 0, b: 0, a: 1}
number: 8
text: hello
flag: false
alias: {type: VARIABLE_ALIAS, id: "VariableID:3"}
`
	var got map[string]Value
	require.NoError(t, yaml.Unmarshal([]byte(doc), &got))

	assert.Equal(t, ColorValue(Color{R: 1, A: 1}), got["color"])
	assert.Equal(t, NumberValue(8), got["number"])
	assert.Equal(t, TextValue("hello"), got["text"])
	assert.Equal(t, BoolValue(false), got["flag"])
	assert.Equal(t, AliasValue("VariableID:3"), got["alias"])
}

func TestModeValuesKeepOrder(t *testing.T) {
	in := `{"z":1,"a":2,"m":3}`

	var mv ModeValues
	require.NoError(t, json.Unmarshal([]byte(in), &mv))
	require.Len(t, mv, 3)
	assert.Equal(t, []string{"z", "a", "m"}, []string{mv[0].ModeID, mv[1].ModeID, mv[2].ModeID})

	out, err := json.Marshal(mv)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))

	var fromYAML ModeValues
	require.NoError(t, yaml.Unmarshal([]byte("z: 1\na: 2\nm: 3\n"), &fromYAML))
	assert.Equal(t, mv, fromYAML)
}

func TestRemoteRefShapes(t *testing.T) {
	var v struct {
		Remote *RemoteRef `json:"remote" yaml:"remote"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"remote":{"id":"VariableID:7"}}`), &v))
	require.NotNil(t, v.Remote)
	assert.Equal(t, "VariableID:7", v.Remote.ID)

	v.Remote = nil
	require.NoError(t, json.Unmarshal([]byte(`{"remote":true}`), &v))
	require.NotNil(t, v.Remote)
	assert.Empty(t, v.Remote.ID)

	v.Remote = nil
	require.NoError(t, yaml.Unmarshal([]byte("remote:\n  id: VariableID:8\n"), &v))
	require.NotNil(t, v.Remote)
	assert.Equal(t, "VariableID:8", v.Remote.ID)
}
