package scene

import "github.com/google/uuid"

// Clone returns a structural deep copy of the node and its subtree.
// History snapshots rely on this instead of a serialization round-trip so
// the type discriminator and field defaults survive exactly.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dup := *n
	if n.Children != nil {
		dup.Children = make([]*Node, 0, len(n.Children))
		for _, c := range n.Children {
			if c == nil {
				continue
			}
			dup.Children = append(dup.Children, c.Clone())
		}
	}
	return &dup
}

// CloneObjects deep-copies a top-level object sequence.
func CloneObjects(objects []*Node) []*Node {
	if objects == nil {
		return nil
	}
	dup := make([]*Node, 0, len(objects))
	for _, n := range objects {
		if n == nil {
			continue
		}
		dup = append(dup, n.Clone())
	}
	return dup
}

// Clone deep-copies the level, including layers and settings.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	dup := *l
	dup.Objects = CloneObjects(l.Objects)
	dup.Layers = append([]Layer(nil), l.Layers...)
	return &dup
}

// Reassign gives the node and its whole subtree fresh ids. Used when
// pasting or duplicating so copies never collide with their sources.
func (n *Node) Reassign() {
	if n == nil {
		return
	}
	n.ID = uuid.NewString()
	for _, c := range n.Children {
		c.Reassign()
	}
}
