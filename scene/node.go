package scene

import "github.com/google/uuid"

// NodeType discriminates the node variants. TypeGroup is the only variant
// that owns children; every other type is a leaf. TypePlayerStart is
// reserved: a level must contain exactly one such node to be saved.
type NodeType string

const (
	TypeGroup       NodeType = "group"
	TypeRect        NodeType = "rect"
	TypeSprite      NodeType = "sprite"
	TypePlayerStart NodeType = "player_start"
)

// FallbackSize substitutes for missing leaf extents so bounds and
// intersection tests never degenerate to zero area.
const FallbackSize = 32.0

// Node is one element of the scene tree. X and Y are relative to the
// parent group's local origin; top-level nodes are relative to the world
// origin. Children is populated only when Type is TypeGroup.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Name     string   `json:"name,omitempty"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Visible  bool     `json:"visible"`
	Locked   bool     `json:"locked,omitempty"`
	LayerID  string   `json:"layer_id,omitempty"`
	Image    string   `json:"image,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// NewLeaf creates a leaf node of the given type. A TypeGroup argument is
// coerced to TypeRect; groups are created with NewGroup.
func NewLeaf(t NodeType, x, y, w, h float64) *Node {
	if t == TypeGroup {
		t = TypeRect
	}
	return &Node{
		ID:      uuid.NewString(),
		Type:    t,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Visible: true,
	}
}

// NewGroup creates an empty group at the given parent-relative position.
func NewGroup(x, y float64) *Node {
	return &Node{
		ID:      uuid.NewString(),
		Type:    TypeGroup,
		X:       x,
		Y:       y,
		Visible: true,
	}
}

// NewPlayerStart creates the reserved spawn marker node.
func NewPlayerStart(x, y float64) *Node {
	n := NewLeaf(TypePlayerStart, x, y, FallbackSize, FallbackSize)
	n.Name = "Player Start"
	return n
}

func (n *Node) IsGroup() bool {
	return n != nil && n.Type == TypeGroup
}

func (n *Node) IsPlayerStart() bool {
	return n != nil && n.Type == TypePlayerStart
}

// AddChild appends child to a group's children. Adding to a non-group or
// adding a nil child is a no-op.
func (n *Node) AddChild(child *Node) {
	if !n.IsGroup() || child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// RemoveChild detaches the child with the given id and returns it, or nil
// if the id is not a direct child.
func (n *Node) RemoveChild(id string) *Node {
	if !n.IsGroup() {
		return nil
	}
	for i, c := range n.Children {
		if c != nil && c.ID == id {
			removed := c
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return removed
		}
	}
	return nil
}

// Normalize repairs a node loaded from external data: leaves lose any
// stray children, sizes are never negative, and missing ids are filled.
func (n *Node) Normalize() {
	if n == nil {
		return
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Width < 0 {
		n.Width = 0
	}
	if n.Height < 0 {
		n.Height = 0
	}
	if !n.IsGroup() {
		n.Children = nil
		return
	}
	kept := n.Children[:0]
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		c.Normalize()
		kept = append(kept, c)
	}
	n.Children = kept
}
