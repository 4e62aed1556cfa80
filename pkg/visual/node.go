package visual

// NodeKind tells frames from template instances.
type NodeKind int

const (
	// KindFrame is an auto-layout container.
	KindFrame NodeKind = iota
	// KindInstance is an instance of a component template.
	KindInstance
)

func (k NodeKind) String() string {
	if k == KindInstance {
		return "INSTANCE"
	}
	return "FRAME"
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// LayoutMode is the auto-layout direction.
type LayoutMode int

const (
	LayoutNone LayoutMode = iota
	LayoutHorizontal
	LayoutVertical
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutHorizontal:
		return "HORIZONTAL"
	case LayoutVertical:
		return "VERTICAL"
	default:
		return "NONE"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m LayoutMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// RGB is a color with channels in [0,1].
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// Paint is a solid fill.
type Paint struct {
	Color   RGB     `json:"color" yaml:"color"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// Padding is the inner spacing of a frame.
type Padding struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Stroke is an inside stroke drawn on the left edge only.
type Stroke struct {
	Color RGB     `json:"color" yaml:"color"`
	Left  float64 `json:"left" yaml:"left"`
}

// Node is a frame or an instance in the projected tree. Width and Height
// hug the contents once the layout has been computed.
type Node struct {
	Name      string     `json:"name" yaml:"name"`
	Kind      NodeKind   `json:"kind" yaml:"kind"`
	Component string     `json:"component,omitempty" yaml:"component,omitempty"`
	Layout    LayoutMode `json:"layout" yaml:"layout"`
	Gap       float64    `json:"gap,omitempty" yaml:"gap,omitempty"`
	Padding   Padding    `json:"padding" yaml:"padding"`
	Stroke    *Stroke    `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	// Texts holds the characters written to the instance's text layers.
	Texts map[string]string `json:"texts,omitempty" yaml:"texts,omitempty"`
	// Fill is the swatch fill of a color instance.
	Fill     *Paint  `json:"fill,omitempty" yaml:"fill,omitempty"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func newFrame(name string, layout LayoutMode, gap float64) *Node {
	return &Node{Name: name, Kind: KindFrame, Layout: layout, Gap: gap}
}

func (n *Node) append(child *Node) {
	n.Children = append(n.Children, child)
}

// Find returns the first node named name in depth-first order, including n itself.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node named name in depth-first order.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	n.walk(func(x *Node) {
		if x.Name == name {
			out = append(out, x)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// hug sizes frames bottom-up so they wrap their children.
func (n *Node) hug() {
	if n.Kind != KindFrame {
		return
	}

	var main, cross float64
	for i, c := range n.Children {
		c.hug()
		w, h := c.Width, c.Height
		if n.Layout == LayoutVertical {
			w, h = h, w
		}
		if i > 0 {
			main += n.Gap
		}
		main += w
		cross = max(cross, h)
	}

	if n.Layout == LayoutVertical {
		n.Width = cross + n.Padding.Left + n.Padding.Right
		n.Height = main + n.Padding.Top + n.Padding.Bottom
		return
	}
	n.Width = main + n.Padding.Left + n.Padding.Right
	n.Height = cross + n.Padding.Top + n.Padding.Bottom
}
