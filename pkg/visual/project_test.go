package visual

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

func sampleTree() *tokens.Tree {
	t := tokens.NewTree()
	t.SetToken("brandColors", "light", "color", "primary", tokens.Token{Value: "#ff0000", Type: figma.TypeColor})
	t.SetToken("brandColors", "light", "color", "secondary", tokens.Token{Value: "color/primary", Type: figma.TypeColor})
	t.SetToken("brandColors", "dark", "color", "primary", tokens.Token{Value: "#0000ff80", Type: figma.TypeColor})
	t.SetToken("spacing", "compact", "space", "small", tokens.Token{Value: 4.0, Type: figma.TypeFloat})
	t.SetFallback("orphan", tokens.Token{Value: true, Type: figma.TypeBoolean})
	return t
}

func TestProject(t *testing.T) {
	canvas := NewMemoryCanvas(DefaultTemplates()...)

	root, err := Project(context.Background(), canvas, sampleTree())
	require.NoError(t, err)

	assert.Equal(t, []*Node{root}, canvas.Committed())
	assert.Equal(t, []Font{DefaultFont}, canvas.Fonts())
	assert.Equal(t, []string{MsgCreated}, canvas.Notifications())

	assert.Equal(t, "collections", root.Name)
	assert.Equal(t, LayoutHorizontal, root.Layout)
	require.Len(t, root.Children, 2, "fallback entries are not drawn")

	brand, spacing := root.Children[0], root.Children[1]
	assert.Equal(t, "Collection", brand.Children[0].Texts[LayerTitle])
	assert.Equal(t, "brandColors", brand.Children[0].Texts[LayerName])
	assert.Equal(t, &Stroke{Left: 5}, brand.Stroke)
	assert.Equal(t, Padding{25, 25, 25, 25}, brand.Padding)

	modes := brand.FindAll("mode")
	require.Len(t, modes, 2)
	assert.Equal(t, "light", modes[0].Children[0].Texts[LayerName])
	assert.Equal(t, "Mode", modes[0].Children[0].Texts[LayerTitle])
	assert.Equal(t, 25.0, modes[0].Padding.Left)
	assert.Equal(t, LayoutVertical, modes[0].Layout)

	colors := brand.FindAll(VariableColor)
	require.Len(t, colors, 3)
	assert.Equal(t, "primary", colors[0].Texts[LayerName])
	assert.Equal(t, "#ff0000", colors[0].Texts[LayerValue])
	assert.Equal(t, &Paint{Color: RGB{1, 0, 0}, Opacity: 1}, colors[0].Fill)
	assert.Equal(t, &Paint{Color: RGB{0.9, 0.9, 0.9}, Opacity: 1}, colors[1].Fill, "references get a placeholder")
	assert.InDelta(t, 128.0/255, colors[2].Fill.Opacity, 1e-9)
	assert.Equal(t, 1.0, colors[2].Fill.Color.B)

	number := spacing.Find(VariableNumber)
	require.NotNil(t, number)
	assert.Equal(t, "4", number.Texts[LayerValue])
	assert.Nil(t, number.Fill)
	_, hasVisual := number.Texts[LayerVisual]
	assert.False(t, hasVisual)

	// sizes hug the default templates
	assert.Equal(t, 845.0, brand.Width)
	assert.Equal(t, 230.0, brand.Height)
	assert.Equal(t, 565.0, spacing.Width)
	assert.Equal(t, 230.0, spacing.Height, "collections share the tallest height")
	assert.Equal(t, 1415.0, root.Width)
	assert.Equal(t, 230.0, root.Height)
}

func TestProjectSingleCollectionKeepsHeight(t *testing.T) {
	tree := tokens.NewTree()
	tree.SetToken("spacing", "compact", "space", "small", tokens.Token{Value: 4.0, Type: figma.TypeFloat})

	root, err := Project(context.Background(), NewMemoryCanvas(DefaultTemplates()...), tree)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, 190.0, root.Children[0].Height)
}

func TestProjectMissingComponents(t *testing.T) {
	without := func(name string) []Component {
		var out []Component
		for _, c := range DefaultTemplates() {
			if c.Name != name {
				out = append(out, c)
			}
		}
		return out
	}

	tests := []struct {
		name    string
		missing string
		note    string
	}{
		{"heading", HeadingGroup, MsgMissingHeadings},
		{"variable", VariableBoolean, MsgMissingVariables},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := NewMemoryCanvas(without(tt.missing)...)

			_, err := Project(context.Background(), canvas, sampleTree())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingComponent))
			assert.Contains(t, err.Error(), tt.missing)

			assert.Equal(t, []string{tt.note}, canvas.Notifications())
			assert.Empty(t, canvas.Fonts(), "nothing happens after a failed check")
			assert.Empty(t, canvas.Committed())
		})
	}
}

func TestProjectFontLoadFailure(t *testing.T) {
	boom := errors.New("no fonts")
	canvas := NewMemoryCanvas(DefaultTemplates()...)
	canvas.FontErr = boom

	_, err := Project(context.Background(), canvas, sampleTree())
	assert.ErrorIs(t, err, ErrFontLoad)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{MsgFontLoad}, canvas.Notifications())
	assert.Empty(t, canvas.Committed())
}

func TestProjectCommitFailure(t *testing.T) {
	boom := errors.New("read-only page")
	canvas := NewMemoryCanvas(DefaultTemplates()...)
	canvas.CommitErr = boom

	_, err := Project(context.Background(), canvas, sampleTree())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, canvas.Notifications())
}

func TestProjectEmptyTree(t *testing.T) {
	canvas := NewMemoryCanvas(DefaultTemplates()...)
	root, err := Project(context.Background(), canvas, nil)
	require.NoError(t, err)
	assert.Empty(t, root.Children)
	assert.Zero(t, root.Width)
}

func TestTemplateFor(t *testing.T) {
	tests := []struct {
		tok  tokens.Token
		want string
	}{
		{tokens.Token{Type: figma.TypeColor, Value: "color/primary"}, VariableColor},
		{tokens.Token{Type: figma.TypeFloat, Value: "spacing/small"}, VariableNumber},
		{tokens.Token{Type: figma.TypeString, Value: "Inter"}, VariableString},
		{tokens.Token{Type: figma.TypeBoolean, Value: true}, VariableBoolean},
		{tokens.Token{Value: "#fff"}, VariableColor},
		{tokens.Token{Value: 12.5}, VariableNumber},
		{tokens.Token{Value: false}, VariableBoolean},
		{tokens.Token{Value: "true"}, VariableBoolean},
		{tokens.Token{Value: "hello"}, VariableString},
		{tokens.Token{}, VariableString},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TemplateFor(tt.tok), "%+v", tt.tok)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "16", FormatValue(16.0))
	assert.Equal(t, "0.5", FormatValue(0.5))
	assert.Equal(t, "false", FormatValue(false))
	assert.Equal(t, "#000000", FormatValue("#000000"))
	assert.Equal(t, "undefined", FormatValue(nil))
}
