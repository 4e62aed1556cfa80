package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"primary", "primary"},
		{"primaryBlue", "primary-blue"},
		{"radiusLarge2", "radius-large2"},
		{"size2Xl", "size2-xl"},
		{"Border Radius", "border-radius"},
		{"snake_case", "snake-case"},
		{"weird!@#name", "weirdname"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toKebabCase(tt.in), tt.in)
	}
}

func TestToMarkdown(t *testing.T) {
	tree := tokens.NewTree()
	tree.SetToken("brandColors", "light", "color", "primaryBlue", tokens.Token{Value: "#0000ff", Type: figma.TypeColor})
	tree.SetToken("brandColors", "light", "color", "accent", tokens.Token{Value: "color/primaryBlue", Type: figma.TypeColor})
	tree.SetToken("brandColors", "light", "radius", "large", tokens.Token{Value: 12.0, Type: figma.TypeFloat})
	tree.SetToken("brandColors", "darkMode", "color", "primaryBlue", tokens.Token{Value: "#000080", Type: figma.TypeColor})
	tree.SetFallback("debug", tokens.Token{Value: true, Type: figma.TypeBoolean})

	want := "# Design Tokens - Brand\n\n" +
		"This document contains the design tokens exported from the Figma file's local variables.\n\n" +
		"## Collections\n\n" +
		"### brandColors\n\n" +
		"#### light\n\n" +
		"```css\n" +
		"/* color */\n" +
		"--color-primary-blue: #0000ff;\n" +
		"--color-accent: color/primaryBlue;\n" +
		"\n" +
		"/* radius */\n" +
		"--radius-large: 12;\n" +
		"```\n\n" +
		"#### darkMode\n\n" +
		"```css\n" +
		"/* color */\n" +
		"--color-primary-blue: #000080;\n" +
		"```\n\n" +
		"## Ungrouped Tokens\n\n" +
		"| Token | Type | Value |\n" +
		"|-------|------|-------|\n" +
		"| debug | BOOLEAN | `true` |\n\n" +
		"## Summary\n\n" +
		"- **Collections**: 1\n" +
		"- **Modes**: 2\n" +
		"- **Tokens**: 4\n" +
		"- **Ungrouped Tokens**: 1\n"

	assert.Equal(t, want, ToMarkdown(tree, "Brand"))
}

func TestToMarkdownEmpty(t *testing.T) {
	got := ToMarkdown(nil, "Empty")
	assert.Contains(t, got, "# Design Tokens - Empty")
	assert.NotContains(t, got, "## Collections")
	assert.Contains(t, got, "- **Tokens**: 0\n")
}
