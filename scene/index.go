package scene

import "log"

// Index is an id lookup built by one walk over the tree. The tree itself
// stores no parent pointers; callers that need O(1) parent or node lookup
// build an Index and rebuild it after every structural mutation.
type Index struct {
	nodes   map[string]*Node
	parents map[string]string
}

// BuildIndex walks the level once and returns the lookup. Duplicate ids
// are logged and the first occurrence wins.
func BuildIndex(l *Level) *Index {
	ix := &Index{
		nodes:   make(map[string]*Node),
		parents: make(map[string]string),
	}
	if l == nil {
		return ix
	}
	l.Walk(func(n, parent *Node) bool {
		if _, dup := ix.nodes[n.ID]; dup {
			log.Printf("scene: duplicate node id %q in tree", n.ID)
			return true
		}
		ix.nodes[n.ID] = n
		if parent != nil {
			ix.parents[n.ID] = parent.ID
		} else {
			ix.parents[n.ID] = ""
		}
		return true
	})
	return ix
}

// Node returns the node with the given id, or nil.
func (ix *Index) Node(id string) *Node {
	if ix == nil {
		return nil
	}
	return ix.nodes[id]
}

// ParentID returns the parent group id of the node ("" for top-level
// nodes) and whether the id is known at all.
func (ix *Index) ParentID(id string) (string, bool) {
	if ix == nil {
		return "", false
	}
	pid, ok := ix.parents[id]
	return pid, ok
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.nodes)
}
