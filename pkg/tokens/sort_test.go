package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/kataras/figma-tokens/pkg/figma"
)

func TestSortCollections(t *testing.T) {
	tree := NewTree()
	tree.SetToken("zeta", "light", "color", "b", Token{Value: "#000000", Type: figma.TypeColor})
	tree.SetToken("zeta", "light", "color", "a", Token{Value: "#ffffff", Type: figma.TypeColor})
	tree.SetFallback("alpha", Token{Value: 1.0, Type: figma.TypeFloat})
	tree.SetToken("mid", "dark", "space", "x", Token{Value: 2.0, Type: figma.TypeFloat})

	sorted := SortCollections(tree)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, sorted.Keys())

	// Nested content is shared and untouched.
	assert.Same(t, tree.Get("zeta"), sorted.Get("zeta"))
	group, _ := sorted.Lookup("zeta", "light", "color")
	assert.Equal(t, []string{"b", "a"}, group.Keys())

	// The input is not reordered.
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, tree.Keys())
}

func TestSortCollectionsKeepsSliceValues(t *testing.T) {
	tree := NewTree()
	list := []any{3.0, 1.0, 2.0}
	tree.SetFallback("list", Token{Value: list, Type: figma.VariableType("ARRAY")})

	sorted := SortCollections(tree)
	tok, ok := sorted.Get("list").Token()
	assert.True(t, ok)
	assert.Equal(t, []any{3.0, 1.0, 2.0}, tok.Value)
}

func TestSortCollectionsNil(t *testing.T) {
	assert.Nil(t, SortCollections(nil))
}

// Code-point order puts uppercase ASCII before lowercase and non-ASCII last.
func TestSortCollectionsCodePointOrder(t *testing.T) {
	tree := NewTree()
	for _, k := range []string{"beta", "ärger", "Alpha", "zeta", "alpha"} {
		tree.SetFallback(k, Token{Value: k, Type: figma.TypeString})
	}

	sorted := SortCollections(tree)
	assert.Equal(t, []string{"Alpha", "alpha", "beta", "zeta", "ärger"}, sorted.Keys())
}

func TestSortCollectionsCollation(t *testing.T) {
	tree := NewTree()
	for _, k := range []string{"zeta", "ärger", "beta", "alpha"} {
		tree.SetFallback(k, Token{Value: k, Type: figma.TypeString})
	}

	sorted := SortCollectionsFunc(tree, Collation(language.German))
	assert.Equal(t, []string{"alpha", "ärger", "beta", "zeta"}, sorted.Keys())
}
