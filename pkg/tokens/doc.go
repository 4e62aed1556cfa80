// Package tokens turns a flat list of Figma variables into the canonical
// design-token tree: Collection → Mode → Group → Variable.
//
// Names are normalized to camel case (Normalize), split into a group and a
// variable name (Split), aliases are rewritten as "group/name" references
// (Resolve) and literals are encoded (Encode, ColorHex). Build assembles the
// tree and SortCollections orders its top level. Everything in this package
// is pure and never fails; unresolvable input degrades to fallback values.
package tokens
