package figma

// VariableType is the resolved type of a Figma variable.
type VariableType string

// Resolved variable types supported by the Figma variables API.
const (
	TypeColor   VariableType = "COLOR"
	TypeFloat   VariableType = "FLOAT"
	TypeString  VariableType = "STRING"
	TypeBoolean VariableType = "BOOLEAN"
)

// LocalVariablesResponse represents the response of the local variables endpoint
// (GET /v1/files/:key/variables/local). Variables and collections are keyed by id
// and keep the order in which the API returned them.
type LocalVariablesResponse struct {
	Status int                `json:"status"`
	Error  bool               `json:"error"`
	Meta   LocalVariablesMeta `json:"meta"`
}

// LocalVariablesMeta holds the variables and variable collections of a file.
type LocalVariablesMeta struct {
	Variables           OrderedVariables   `json:"variables"`
	VariableCollections OrderedCollections `json:"variableCollections"`
}

// Snapshot converts the response into a Snapshot, preserving the API order.
func (r *LocalVariablesResponse) Snapshot() *Snapshot {
	return &Snapshot{
		Variables:   append([]Variable(nil), r.Meta.Variables...),
		Collections: append([]VariableCollection(nil), r.Meta.VariableCollections...),
	}
}

// Snapshot is a read-only copy of a file's variables and collections,
// fetched once per run.
type Snapshot struct {
	Variables   []Variable           `json:"variables" yaml:"variables"`
	Collections []VariableCollection `json:"collections" yaml:"collections"`
}

// Variable represents a single Figma variable.
type Variable struct {
	ID                   string       `json:"id" yaml:"id"`
	Name                 string       `json:"name" yaml:"name"`
	Key                  string       `json:"key,omitempty" yaml:"key,omitempty"`
	VariableCollectionID string       `json:"variableCollectionId" yaml:"variableCollectionId"`
	ResolvedType         VariableType `json:"resolvedType" yaml:"resolvedType"`
	ValuesByMode         ModeValues   `json:"valuesByMode" yaml:"valuesByMode"`
	Remote               *RemoteRef   `json:"remote,omitempty" yaml:"remote,omitempty"`
	Description          string       `json:"description,omitempty" yaml:"description,omitempty"`
}

// RemoteRef marks a variable that points at another (library) variable.
// The REST API reports remote as a plain boolean, which decodes into a
// marker with an empty ID.
type RemoteRef struct {
	ID string `json:"id" yaml:"id"`
}

// VariableCollection represents a named set of variables and the modes they share.
type VariableCollection struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Key           string `json:"key,omitempty" yaml:"key,omitempty"`
	Modes         []Mode `json:"modes" yaml:"modes"`
	DefaultModeID string `json:"defaultModeId,omitempty" yaml:"defaultModeId,omitempty"`
}

// ModeName returns the display name of the mode with the given id.
func (c *VariableCollection) ModeName(modeID string) (string, bool) {
	for _, m := range c.Modes {
		if m.ModeID == modeID {
			return m.Name, true
		}
	}
	return "", false
}

// Mode is a named variant (e.g. light or dark) of a collection.
type Mode struct {
	ModeID string `json:"modeId" yaml:"modeId"`
	Name   string `json:"name" yaml:"name"`
}

// ModeValue is a single mode-id to raw value pair.
type ModeValue struct {
	ModeID string
	Value  Value
}

// ModeValues holds a variable's values in document order.
type ModeValues []ModeValue

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to 0-255 range for standard use.
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// VariableAlias is a structured pointer to another variable.
type VariableAlias struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id" yaml:"id"`
}

// AliasType is the type tag carried by a VariableAlias.
const AliasType = "VARIABLE_ALIAS"
