package visual

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

// Spacing used by the projected frames.
const (
	CollectionsGap     = 5
	CollectionPadding  = 25
	CollectionGap      = 10
	ModesGap           = 15
	ModeGap            = 20
	ModePaddingLeft    = 25
	collectionStroke   = 5
	modeStroke         = 1
	modeStrokeGrey     = 0.867
	referenceSwatchRGB = 0.9
)

// Notifications shown to the user.
const (
	MsgMissingHeadings  = "Error: One or more heading components not found (heading-collection, heading-mode, heading-group)"
	MsgMissingVariables = "Error: One or more variable type components not found. Please check component names."
	MsgFontLoad         = "Error: Could not load default font."
	MsgCreated          = "Visual representation created successfully!"
)

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

type catalog map[string]*Component

// Project lays the tree out on canvas and returns the committed root frame.
//
// Every template is resolved before anything is drawn; a missing one aborts
// with ErrMissingComponent. Flat fallback entries at the top level are not drawn.
func Project(ctx context.Context, canvas Canvas, tree *tokens.Tree) (*Node, error) {
	cat, err := resolve(canvas)
	if err != nil {
		return nil, err
	}

	if err := canvas.LoadFont(ctx, DefaultFont); err != nil {
		canvas.Notify(MsgFontLoad)
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	root := newFrame("collections", LayoutHorizontal, CollectionsGap)
	var collections []*Node

	if tree != nil {
		for _, name := range tree.Keys() {
			n := tree.Get(name)
			if n == nil || n.IsLeaf() {
				continue
			}
			c := cat.collection(name, n)
			root.append(c)
			collections = append(collections, c)
		}
	}

	root.hug()
	if len(collections) > 1 {
		var tallest float64
		for _, c := range collections {
			tallest = max(tallest, c.Height)
		}
		for _, c := range collections {
			c.Height = tallest
		}
	}

	if err := canvas.Commit(ctx, root); err != nil {
		return nil, fmt.Errorf("commit visual: %w", err)
	}
	canvas.Notify(MsgCreated)
	return root, nil
}

func resolve(canvas Canvas) (catalog, error) {
	cat := make(catalog, len(Headings)+len(Variables))
	var missing []string
	lookup := func(names []string) bool {
		ok := true
		for _, name := range names {
			c, found := canvas.Component(name)
			if !found || c == nil {
				missing = append(missing, name)
				ok = false
				continue
			}
			cat[name] = c
		}
		return ok
	}

	headingsOK := lookup(Headings)
	variablesOK := lookup(Variables)
	switch {
	case !headingsOK:
		canvas.Notify(MsgMissingHeadings)
	case !variablesOK:
		canvas.Notify(MsgMissingVariables)
	default:
		return cat, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingComponent, strings.Join(missing, ", "))
}

func (cat catalog) instance(name string, texts map[string]string) *Node {
	c := cat[name]
	n := &Node{
		Name:      name,
		Kind:      KindInstance,
		Component: name,
		Width:     c.Width,
		Height:    c.Height,
		Texts:     make(map[string]string, len(texts)),
	}
	for layer, text := range texts {
		if c.HasLayer(layer) {
			n.Texts[layer] = text
		}
	}
	return n
}

func (cat catalog) heading(template, title, name string) *Node {
	return cat.instance(template, map[string]string{LayerTitle: title, LayerName: name})
}

func (cat catalog) collection(name string, data *tokens.Node) *Node {
	f := newFrame("collection", LayoutHorizontal, CollectionGap)
	f.Padding = Padding{CollectionPadding, CollectionPadding, CollectionPadding, CollectionPadding}
	f.Stroke = &Stroke{Left: collectionStroke}
	f.append(cat.heading(HeadingCollection, "Collection", name))

	modes := newFrame("modes", LayoutHorizontal, ModesGap)
	f.append(modes)

	for _, modeName := range data.Keys() {
		modeData := data.Child(modeName)
		if modeData.IsLeaf() {
			continue
		}

		mode := newFrame("mode", LayoutVertical, ModeGap)
		mode.Padding.Left = ModePaddingLeft
		mode.Stroke = &Stroke{Color: RGB{modeStrokeGrey, modeStrokeGrey, modeStrokeGrey}, Left: modeStroke}
		mode.append(cat.heading(HeadingMode, "Mode", modeName))
		modes.append(mode)

		for _, groupName := range modeData.Keys() {
			groupData := modeData.Child(groupName)
			if groupData.IsLeaf() {
				continue
			}

			group := newFrame("group", LayoutVertical, 0)
			group.append(cat.heading(HeadingGroup, "Group", groupName))
			mode.append(group)

			for _, varName := range groupData.Keys() {
				tok, ok := groupData.Child(varName).Token()
				if !ok {
					continue
				}
				group.append(cat.variable(varName, tok))
			}
		}
	}
	return f
}

func (cat catalog) variable(name string, tok tokens.Token) *Node {
	template := TemplateFor(tok)
	n := cat.instance(template, map[string]string{
		LayerName:  name,
		LayerValue: FormatValue(tok.Value),
	})
	n.Layout = LayoutHorizontal

	if tok.Type == figma.TypeColor && cat[template].HasLayer(LayerVisual) {
		n.Fill = swatch(tok.Value)
	}
	return n
}

// TemplateFor picks the variable template for a token. Unknown types are
// guessed from the value.
func TemplateFor(tok tokens.Token) string {
	switch tok.Type {
	case figma.TypeColor:
		return VariableColor
	case figma.TypeFloat:
		return VariableNumber
	case figma.TypeString:
		return VariableString
	case figma.TypeBoolean:
		return VariableBoolean
	}

	switch v := tok.Value.(type) {
	case string:
		if strings.HasPrefix(v, "#") {
			return VariableColor
		}
		if v == "true" || v == "false" {
			return VariableBoolean
		}
	case float64, float32, int, int64:
		return VariableNumber
	case bool:
		return VariableBoolean
	}
	return VariableString
}

// FormatValue renders a token value as text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// swatch parses #RRGGBB and #RRGGBBAA values; anything else, such as a
// reference, gets a light grey placeholder.
func swatch(v any) *Paint {
	s, ok := v.(string)
	if !ok || !hexColorRe.MatchString(s) {
		return &Paint{Color: RGB{referenceSwatchRGB, referenceSwatchRGB, referenceSwatchRGB}, Opacity: 1}
	}

	hex := s[1:]
	channel := func(i int) float64 {
		n, _ := strconv.ParseUint(hex[i:i+2], 16, 8)
		return float64(n) / 255
	}

	p := &Paint{Color: RGB{channel(0), channel(2), channel(4)}, Opacity: 1}
	if len(hex) == 8 {
		p.Opacity = channel(6)
	}
	return p
}
