package scene

// DeleteNode removes the node with the given id and its subtree from the
// level. Deleting a group first extracts every player_start descendant to
// the group's nearest surviving ancestor (or the top level) at its
// preserved world position, so the spawn marker is never lost as
// collateral. Returns false when the id is not in the tree.
func (l *Level) DeleteNode(id string) bool {
	if l == nil {
		return false
	}
	path := l.PathTo(id)
	if path == nil {
		return false
	}
	target := path[len(path)-1]
	var survivor *Node
	if len(path) > 1 {
		survivor = path[len(path)-2]
	}

	if target.IsGroup() {
		for _, ps := range playerStartsIn(target) {
			world := l.WorldPosition(ps)
			owner := l.ParentOf(ps.ID)
			if owner != nil {
				owner.RemoveChild(ps.ID)
			}
			if survivor == nil {
				ps.X, ps.Y = world.X, world.Y
				l.Objects = append(l.Objects, ps)
				continue
			}
			base := l.WorldPosition(survivor)
			ps.X, ps.Y = world.X-base.X, world.Y-base.Y
			survivor.AddChild(ps)
		}
	}

	return l.Detach(id) != nil
}

func playerStartsIn(g *Node) []*Node {
	var found []*Node
	var rec func(n *Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsPlayerStart() {
			found = append(found, n)
		}
		for _, c := range n.Children {
			rec(c)
		}
	}
	for _, c := range g.Children {
		rec(c)
	}
	return found
}

// PruneEmptyGroups deletes every group with no children left, except
// groups whose id is in keep (the ones currently open for editing). A
// prune pass can empty a parent group, so passes repeat until stable.
// Returns the ids of the removed groups.
func (l *Level) PruneEmptyGroups(keep map[string]bool) []string {
	if l == nil {
		return nil
	}
	var pruned []string
	for {
		var victim string
		l.Walk(func(n, _ *Node) bool {
			if n.IsGroup() && len(n.Children) == 0 && !keep[n.ID] {
				victim = n.ID
				return false
			}
			return true
		})
		if victim == "" {
			return pruned
		}
		l.DeleteNode(victim)
		pruned = append(pruned, victim)
	}
}

// CountPlayerStarts returns the number of player_start nodes in the tree.
func (l *Level) CountPlayerStarts() int {
	count := 0
	l.Walk(func(n, _ *Node) bool {
		if n.IsPlayerStart() {
			count++
		}
		return true
	})
	return count
}

// FindPlayerStart returns the first player_start node, or nil.
func (l *Level) FindPlayerStart() *Node {
	var found *Node
	l.Walk(func(n, _ *Node) bool {
		if n.IsPlayerStart() {
			found = n
			return false
		}
		return true
	})
	return found
}

// EnsurePlayerStart appends a new player start at the world origin when
// the tree has none and returns it (or the existing one). Callers must
// not invoke this while history is being replayed; an undo target without
// a spawn marker has to stay without one.
func (l *Level) EnsurePlayerStart() *Node {
	if l == nil {
		return nil
	}
	if ps := l.FindPlayerStart(); ps != nil {
		return ps
	}
	ps := NewPlayerStart(0, 0)
	l.Objects = append(l.Objects, ps)
	return ps
}
