// Package visual projects a token tree onto a design canvas as nested,
// auto-laid-out frames built from a fixed catalog of component templates.
package visual

import (
	"context"
	"errors"
)

var (
	// ErrMissingComponent is returned when a required template is not on the canvas.
	ErrMissingComponent = errors.New("missing component template")
	// ErrFontLoad is returned when the text font could not be loaded.
	ErrFontLoad = errors.New("font load failed")
)

// Template names the projector looks up on the canvas.
const (
	HeadingCollection = "heading-collection"
	HeadingMode       = "heading-mode"
	HeadingGroup      = "heading-group"
	VariableColor     = "variable-color"
	VariableNumber    = "variable-number"
	VariableString    = "variable-string"
	VariableBoolean   = "variable-boolean"
)

// Headings lists the heading templates.
var Headings = []string{HeadingCollection, HeadingMode, HeadingGroup}

// Variables lists the per-type variable templates.
var Variables = []string{VariableColor, VariableNumber, VariableString, VariableBoolean}

// Text layer names inside templates.
const (
	LayerTitle  = "title"
	LayerName   = "name"
	LayerValue  = "value"
	LayerVisual = "visual"
)

// Font identifies a font face.
type Font struct {
	Family string
	Style  string
}

// DefaultFont is loaded before any text is written.
var DefaultFont = Font{Family: "Inter", Style: "Regular"}

// Component is a template available on the canvas.
type Component struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Layers names the layers the template exposes (title, name, value, visual).
	Layers []string `yaml:"layers"`
}

// HasLayer reports whether the template exposes the named layer.
func (c *Component) HasLayer(name string) bool {
	for _, l := range c.Layers {
		if l == name {
			return true
		}
	}
	return false
}

// Canvas is the host surface the projector draws on.
type Canvas interface {
	// Component returns the template with the given name.
	Component(name string) (*Component, bool)
	// LoadFont makes font available for text edits.
	LoadFont(ctx context.Context, font Font) error
	// Commit appends root and its subtree to the canvas.
	Commit(ctx context.Context, root *Node) error
	// Notify shows a short message to the user.
	Notify(msg string)
}
