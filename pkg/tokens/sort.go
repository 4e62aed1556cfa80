package tokens

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortCollections returns a tree whose top-level keys are in ascending
// code-point order. Everything below the top level is shared with t and left
// in its original order, including leaf values such as slices.
func SortCollections(t *Tree) *Tree {
	return SortCollectionsFunc(t, strings.Compare)
}

// SortCollectionsFunc is like SortCollections but orders the top-level keys with cmp.
// The sort is stable, so keys cmp considers equal keep their relative order.
func SortCollectionsFunc(t *Tree, cmp func(a, b string) int) *Tree {
	if t == nil {
		return nil
	}

	keys := t.root.Keys()
	slices.SortStableFunc(keys, cmp)

	sorted := NewTree()
	for _, key := range keys {
		sorted.root.set(key, t.root.Child(key))
	}
	return sorted
}

// Collation returns a locale-aware comparison for SortCollectionsFunc.
// The collator is not safe for concurrent use.
func Collation(tag language.Tag) func(a, b string) int {
	c := collate.New(tag)
	return c.CompareString
}
