package visual

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplates(t *testing.T) {
	list, err := ParseTemplates([]byte(`
- name: heading-collection
  width: 300
  height: 60
  layers: [title, name]
- name: variable-color
  width: 260
  height: 44
  layers: [name, value, visual]
`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, Component{Name: VariableColor, Width: 260, Height: 44, Layers: []string{"name", "value", "visual"}}, list[1])
	assert.True(t, list[1].HasLayer(LayerVisual))
	assert.False(t, list[0].HasLayer(LayerValue))

	_, err = ParseTemplates([]byte("- width: 1\n"))
	assert.Error(t, err)

	_, err = ParseTemplates([]byte("- name: a\n- name: a\n"))
	assert.Error(t, err)

	_, err = ParseTemplates([]byte("name: a\n"))
	assert.Error(t, err)
}

func TestNodeJSON(t *testing.T) {
	n := &Node{Name: "mode", Kind: KindFrame, Layout: LayoutVertical, Stroke: &Stroke{Left: 1}}
	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "mode",
		"kind": "FRAME",
		"layout": "VERTICAL",
		"padding": {"top": 0, "right": 0, "bottom": 0, "left": 0},
		"stroke": {"color": {"r": 0, "g": 0, "b": 0}, "left": 1},
		"width": 0,
		"height": 0
	}`, string(data))
}
