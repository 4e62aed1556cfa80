package tokens

import "github.com/kataras/figma-tokens/pkg/figma"

// Token is a leaf of the token tree: the exported value together with the
// variable's resolved type, so consumers can project by type without going
// back to the source variable.
type Token struct {
	Value any                `json:"value" yaml:"value"`
	Type  figma.VariableType `json:"type" yaml:"type"`
}

// Node is either a branch holding children in insertion order or a leaf
// holding a Token.
type Node struct {
	keys     []string
	children map[string]*Node
	token    *Token
}

func newBranch() *Node {
	return &Node{children: make(map[string]*Node)}
}

func newLeaf(tok Token) *Node {
	return &Node{token: &tok}
}

// IsLeaf reports whether the node holds a token.
func (n *Node) IsLeaf() bool { return n.token != nil }

// Token returns the leaf token, if any.
func (n *Node) Token() (Token, bool) {
	if n.token == nil {
		return Token{}, false
	}
	return *n.token, true
}

// Keys returns the child keys in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Len returns the number of children.
func (n *Node) Len() int { return len(n.keys) }

// Child returns the child stored under key, or nil.
func (n *Node) Child(key string) *Node {
	return n.children[key]
}

// set stores child under key. Replacing keeps the key's original position.
func (n *Node) set(key string, child *Node) {
	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}

// branch returns the branch under key, creating it on first use.
// A leaf found under key is replaced in place by an empty branch.
func (n *Node) branch(key string) *Node {
	if child, ok := n.children[key]; ok && !child.IsLeaf() {
		return child
	}
	child := newBranch()
	n.set(key, child)
	return child
}

// Tree is the canonical Collection → Mode → Group → Variable mapping. The
// top level may also hold fallback tokens for variables that could not be
// placed in the hierarchy.
type Tree struct {
	root *Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: newBranch()}
}

// Root returns the top-level node.
func (t *Tree) Root() *Node { return t.root }

// Keys returns the top-level keys in their current order.
func (t *Tree) Keys() []string { return t.root.Keys() }

// Len returns the number of top-level entries.
func (t *Tree) Len() int { return t.root.Len() }

// Get returns the top-level entry stored under key, or nil.
func (t *Tree) Get(key string) *Node { return t.root.Child(key) }

// Group returns the group branch at collection/mode/group, creating any
// missing level. Calling it again with the same path returns the same node.
func (t *Tree) Group(collection, mode, group string) *Node {
	return t.root.branch(collection).branch(mode).branch(group)
}

// SetToken stores a token at collection/mode/group/name. A token already
// stored under that path is replaced in place.
func (t *Tree) SetToken(collection, mode, group, name string, tok Token) {
	t.Group(collection, mode, group).set(name, newLeaf(tok))
}

// SetFallback stores a flat top-level token under key, replacing whatever was there.
func (t *Tree) SetFallback(key string, tok Token) {
	t.root.set(key, newLeaf(tok))
}

// Lookup follows path from the top level and returns the node found there.
func (t *Tree) Lookup(path ...string) (*Node, bool) {
	n := t.root
	for _, key := range path {
		if n.IsLeaf() {
			return nil, false
		}
		n = n.Child(key)
		if n == nil {
			return nil, false
		}
	}
	return n, true
}
