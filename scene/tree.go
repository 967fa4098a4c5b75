package scene

// Walk visits every node depth-first in draw order, parents before
// children, calling fn with each node and its parent group (nil for
// top-level nodes). Returning false from fn stops the walk.
func (l *Level) Walk(fn func(n, parent *Node) bool) {
	if l == nil || fn == nil {
		return
	}
	walkNodes(l.Objects, nil, fn)
}

func walkNodes(nodes []*Node, parent *Node, fn func(n, parent *Node) bool) bool {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if !fn(n, parent) {
			return false
		}
		if n.IsGroup() {
			if !walkNodes(n.Children, n, fn) {
				return false
			}
		}
	}
	return true
}

// FindNode returns the node with the given id, or nil.
func (l *Level) FindNode(id string) *Node {
	if l == nil || id == "" {
		return nil
	}
	var found *Node
	l.Walk(func(n, _ *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// PathTo returns the ancestor chain from a top-level root down to the node
// with the given id, inclusive. Returns nil when the id is not in the tree.
func (l *Level) PathTo(id string) []*Node {
	if l == nil || id == "" {
		return nil
	}
	return pathIn(l.Objects, id, nil)
}

func pathIn(nodes []*Node, id string, prefix []*Node) []*Node {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.ID == id {
			path := make([]*Node, 0, len(prefix)+1)
			path = append(path, prefix...)
			return append(path, n)
		}
		if n.IsGroup() {
			if path := pathIn(n.Children, id, append(prefix, n)); path != nil {
				return path
			}
		}
	}
	return nil
}

// ParentOf returns the parent group of the node with the given id, or nil
// for top-level and unknown nodes.
func (l *Level) ParentOf(id string) *Node {
	path := l.PathTo(id)
	if len(path) < 2 {
		return nil
	}
	return path[len(path)-2]
}

// IsDescendantOf reports whether the node with the given id sits anywhere
// below the ancestor node.
func (l *Level) IsDescendantOf(id string, ancestor *Node) bool {
	if l == nil || ancestor == nil || !ancestor.IsGroup() {
		return false
	}
	for _, n := range l.PathTo(id) {
		if n == ancestor {
			return n.ID != id
		}
	}
	return false
}

// Detach removes the node with the given id from its parent (or from the
// top level) and returns it. The subtree below it stays intact.
func (l *Level) Detach(id string) *Node {
	if l == nil || id == "" {
		return nil
	}
	for i, n := range l.Objects {
		if n != nil && n.ID == id {
			removed := n
			l.Objects = append(l.Objects[:i], l.Objects[i+1:]...)
			return removed
		}
	}
	if parent := l.ParentOf(id); parent != nil {
		return parent.RemoveChild(id)
	}
	return nil
}

// CollectIDs returns the ids of the node with the given id and its entire
// subtree. Unknown ids yield nil.
func (l *Level) CollectIDs(id string) []string {
	return SubtreeIDs(l.FindNode(id))
}

// SubtreeIDs returns the ids of the node and its entire subtree in draw
// order. Nil yields nil.
func SubtreeIDs(n *Node) []string {
	var ids []string
	collectIDs(n, &ids)
	return ids
}

func collectIDs(n *Node, out *[]string) {
	if n == nil {
		return
	}
	*out = append(*out, n.ID)
	for _, c := range n.Children {
		collectIDs(c, out)
	}
}

// EffectiveLayerID resolves layer inheritance for the node with the given
// id: the node's own layer if set, else the nearest ancestor group's, else
// the default layer.
func (l *Level) EffectiveLayerID(id string) string {
	return EffectiveLayerOf(l.PathTo(id))
}

// EffectiveLayerOf resolves layer inheritance along an ancestor chain,
// deepest node last.
func EffectiveLayerOf(path []*Node) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] != nil && path[i].LayerID != "" {
			return path[i].LayerID
		}
	}
	return DefaultLayerID
}
