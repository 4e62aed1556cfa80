package tokens

import "github.com/kataras/figma-tokens/pkg/figma"

// Index maps variable ids to variables for reference resolution.
type Index map[string]*figma.Variable

// NewIndex indexes the given variables by id.
func NewIndex(variables []figma.Variable) Index {
	idx := make(Index, len(variables))
	for i := range variables {
		idx[variables[i].ID] = &variables[i]
	}
	return idx
}

// CellKind is the variant of a classified value cell.
type CellKind int

// Cell variants.
const (
	// CellLiteral holds a literal value for the Value Encoder.
	CellLiteral CellKind = iota
	// CellLegacyAlias is a bare string that equals a known variable id.
	CellLegacyAlias
	// CellAlias is a structured VARIABLE_ALIAS value.
	CellAlias
)

// Cell is a raw value cell classified into literal or one of the two alias encodings.
type Cell struct {
	Kind     CellKind
	TargetID string      // alias variants only
	Literal  figma.Value // CellLiteral only
}

// Classify disambiguates a raw value. A text value is a legacy alias only
// when it names a variable present in idx.
func Classify(v figma.Value, idx Index) Cell {
	switch v.Kind {
	case figma.KindAlias:
		return Cell{Kind: CellAlias, TargetID: v.Alias.ID}
	case figma.KindText:
		if _, ok := idx[v.Text]; ok {
			return Cell{Kind: CellLegacyAlias, TargetID: v.Text}
		}
	}
	return Cell{Kind: CellLiteral, Literal: v}
}

// Resolve computes the exported value of a variable in one mode.
//
// A remote marker with a target id on the variable wins over the cell, since
// a library reference applies to every mode. Otherwise alias cells resolve to
// the target's "group/name" reference and literals go through Encode.
// Unknown targets degrade to the raw target id.
func Resolve(v *figma.Variable, modeID string, cell figma.Value, idx Index) any {
	if v.Remote != nil && v.Remote.ID != "" {
		return reference(v.Remote.ID, idx)
	}

	c := Classify(cell, idx)
	switch c.Kind {
	case CellLegacyAlias, CellAlias:
		return reference(c.TargetID, idx)
	default:
		return Encode(v.ResolvedType, c.Literal)
	}
}

func reference(targetID string, idx Index) string {
	target, ok := idx[targetID]
	if !ok {
		return targetID
	}
	return ReferenceName(target.Name)
}

// ReferenceName returns the "group/name" form used to point at a variable with the given raw name.
func ReferenceName(rawName string) string {
	group, name := groupAndName(Split(rawName))
	return group + "/" + name
}
