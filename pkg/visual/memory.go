package visual

import (
	"context"
	"sync"
)

// DefaultTemplates returns the seven templates with the sizes and layers of
// the reference design file.
func DefaultTemplates() []Component {
	heading := []string{LayerTitle, LayerName}
	return []Component{
		{Name: HeadingCollection, Width: 240, Height: 56, Layers: heading},
		{Name: HeadingMode, Width: 200, Height: 44, Layers: heading},
		{Name: HeadingGroup, Width: 180, Height: 36, Layers: heading},
		{Name: VariableColor, Width: 240, Height: 40, Layers: []string{LayerName, LayerValue, LayerVisual}},
		{Name: VariableNumber, Width: 240, Height: 40, Layers: []string{LayerName, LayerValue}},
		{Name: VariableString, Width: 240, Height: 40, Layers: []string{LayerName, LayerValue}},
		{Name: VariableBoolean, Width: 240, Height: 40, Layers: []string{LayerName, LayerValue}},
	}
}

// MemoryCanvas records what the projector does. Set FontErr or CommitErr to
// simulate host failures.
type MemoryCanvas struct {
	FontErr   error
	CommitErr error

	mu         sync.Mutex
	components map[string]*Component
	fonts      []Font
	pages      []*Node
	notes      []string
}

var _ Canvas = (*MemoryCanvas)(nil)

// NewMemoryCanvas returns a canvas holding the given templates.
func NewMemoryCanvas(components ...Component) *MemoryCanvas {
	c := &MemoryCanvas{components: make(map[string]*Component, len(components))}
	for i := range components {
		comp := components[i]
		c.components[comp.Name] = &comp
	}
	return c
}

// Component implements Canvas.
func (c *MemoryCanvas) Component(name string) (*Component, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	comp, ok := c.components[name]
	return comp, ok
}

// LoadFont implements Canvas.
func (c *MemoryCanvas) LoadFont(ctx context.Context, font Font) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.FontErr != nil {
		return c.FontErr
	}
	c.mu.Lock()
	c.fonts = append(c.fonts, font)
	c.mu.Unlock()
	return nil
}

// Commit implements Canvas.
func (c *MemoryCanvas) Commit(ctx context.Context, root *Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.CommitErr != nil {
		return c.CommitErr
	}
	c.mu.Lock()
	c.pages = append(c.pages, root)
	c.mu.Unlock()
	return nil
}

// Notify implements Canvas.
func (c *MemoryCanvas) Notify(msg string) {
	c.mu.Lock()
	c.notes = append(c.notes, msg)
	c.mu.Unlock()
}

// Committed returns the committed root frames.
func (c *MemoryCanvas) Committed() []*Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Node(nil), c.pages...)
}

// Notifications returns the messages shown so far.
func (c *MemoryCanvas) Notifications() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.notes...)
}

// Fonts returns the fonts loaded so far.
func (c *MemoryCanvas) Fonts() []Font {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Font(nil), c.fonts...)
}
