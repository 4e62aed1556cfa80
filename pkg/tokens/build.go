package tokens

import "github.com/kataras/figma-tokens/pkg/figma"

// CollectionLookup returns the collection with the given id, or nil when it
// cannot be resolved.
type CollectionLookup func(id string) *figma.VariableCollection

// CollectionMap adapts a slice of collections to a CollectionLookup.
func CollectionMap(collections []figma.VariableCollection) CollectionLookup {
	byID := make(map[string]*figma.VariableCollection, len(collections))
	for i := range collections {
		byID[collections[i].ID] = &collections[i]
	}
	return func(id string) *figma.VariableCollection {
		return byID[id]
	}
}

// Build assembles the token tree from a flat list of variables.
//
// Variables are visited in input order and their modes in document order.
// A variable whose collection resolves and whose name splits into a group and
// a name is stored at collection/mode/group/name. Any other variable becomes
// a flat top-level fallback entry keyed by its normalized name; with several
// modes only the last mode's value survives there.
//
// Mode ids missing from the collection's mode list are used as mode names.
// Build never fails.
func Build(variables []figma.Variable, lookup CollectionLookup) *Tree {
	tree := NewTree()
	idx := NewIndex(variables)

	for i := range variables {
		v := &variables[i]

		var collection *figma.VariableCollection
		if lookup != nil {
			collection = lookup(v.VariableCollectionID)
		}
		path := Split(v.Name)

		if collection == nil || len(path) < 2 {
			key := Normalize(v.Name)
			for _, mv := range v.ValuesByMode {
				tree.SetFallback(key, Token{
					Value: Resolve(v, mv.ModeID, mv.Value, idx),
					Type:  v.ResolvedType,
				})
			}
			continue
		}

		collectionName := Normalize(collection.Name)
		group, name := groupAndName(path)

		for _, mv := range v.ValuesByMode {
			modeName, ok := collection.ModeName(mv.ModeID)
			if !ok {
				modeName = mv.ModeID
			}

			tree.SetToken(collectionName, Normalize(modeName), group, name, Token{
				Value: Resolve(v, mv.ModeID, mv.Value, idx),
				Type:  v.ResolvedType,
			})
		}
	}

	return tree
}
