package egraph

import (
	"sort"

	"juniper/internal/expr"
)

// Graph is a single equality-saturation run's e-graph: a union-find over
// e-classes plus a hash-cons table mapping canonical node signatures to the
// class that owns them. A Graph is not safe for concurrent use; each
// saturation run owns one exclusively.
type Graph struct {
	parent  []ID
	classes map[ID]*EClass
	memo    map[string]ID
}

// New returns an empty e-graph.
func New() *Graph {
	return &Graph{
		classes: map[ID]*EClass{},
		memo:    map[string]ID{},
	}
}

func (g *Graph) find(id ID) ID {
	for g.parent[id] != id {
		g.parent[id] = g.parent[g.parent[id]] // path halving
		id = g.parent[id]
	}
	return id
}

// Find is the exported form of canonical-id lookup, used by callers holding
// an id obtained before a union.
func (g *Graph) Find(id ID) ID { return g.find(id) }

// NodeCount returns the total number of e-nodes across all live classes,
// the quantity the saturation loop's node cap is measured against.
func (g *Graph) NodeCount() int {
	n := 0
	for _, c := range g.classes {
		n += len(c.Nodes)
	}
	return n
}

// ClassCount returns the number of live e-classes.
func (g *Graph) ClassCount() int { return len(g.classes) }

func (g *Graph) sortedClassIDs() []ID {
	ids := make([]ID, 0, len(g.classes))
	for id := range g.classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *Graph) newClass(n ENode) ID {
	id := ID(len(g.parent))
	g.parent = append(g.parent, id)
	cls := &EClass{ID: id, Nodes: []ENode{n}}
	cls.Data = makeAnalysis(g, n)
	g.classes[id] = cls
	return id
}

// Add inserts a ground term, returning its canonical class id. Structurally
// identical terms (after child canonicalization) always resolve to the same
// class.
func (g *Graph) Add(t *expr.Term) ID {
	children := make([]ID, len(t.Args))
	for i, a := range t.Args {
		children[i] = g.Add(a)
	}
	return g.addNode(ENode{Kind: t.Kind, Rat: t.Rat, Name: t.Name, Children: children})
}

func (g *Graph) addNode(n ENode) ID {
	key := n.signature(g)
	if id, ok := g.memo[key]; ok {
		return g.find(id)
	}
	id := g.newClass(n)
	g.memo[key] = id
	return id
}

// instantiate inserts pattern p with its pattern variables resolved through
// subst, returning the resulting class id without unioning it with anything.
func (g *Graph) instantiate(p *expr.Term, subst Subst) ID {
	if p.Kind == expr.PatVar {
		return g.find(subst[p.Pat])
	}
	children := make([]ID, len(p.Args))
	for i, a := range p.Args {
		children[i] = g.instantiate(a, subst)
	}
	return g.addNode(ENode{Kind: p.Kind, Rat: p.Rat, Name: p.Name, Children: children})
}

// Union merges the classes containing a and b. It returns true iff the two
// were not already in the same class, matching the saturation loop's need to
// know whether anything actually changed this iteration.
func (g *Graph) Union(a, b ID) bool {
	a, b = g.find(a), g.find(b)
	if a == b {
		return false
	}
	// Keep the lower id as leader: arbitrary but deterministic, which keeps
	// extraction tie-breaking and test output stable across runs.
	if a > b {
		a, b = b, a
	}
	ca, cb := g.classes[a], g.classes[b]
	ca.Nodes = append(ca.Nodes, cb.Nodes...)
	ca.Data = mergeAnalysis(ca.Data, cb.Data)
	g.parent[b] = a
	delete(g.classes, b)
	return true
}

// Rebuild restores the hash-cons and congruence invariants after a batch of
// unions, then fires the constant-fold analysis's modify hook on every class
// that now carries a datum. It iterates to a fixed point: a single pass can
// both discover new congruences and prune nodes, each of which can expose
// further congruences.
func (g *Graph) Rebuild() {
	for {
		changed := g.restoreCongruence()
		changed = g.dedupeAll() || changed
		changed = g.fireModify() || changed
		if !changed {
			return
		}
	}
}

// restoreCongruence finds any two nodes (in possibly different classes) whose
// canonicalized signatures collide and unions their classes.
func (g *Graph) restoreCongruence() bool {
	seen := map[string]ID{}
	changed := false
	for _, id := range g.sortedClassIDs() {
		cls, ok := g.classes[id]
		if !ok {
			continue
		}
		for _, n := range cls.Nodes {
			key := n.signature(g)
			if owner, ok := seen[key]; ok {
				if g.Union(owner, id) {
					changed = true
				}
				break
			}
			seen[key] = id
		}
	}
	return changed
}

// dedupeAll removes duplicate (by signature) nodes within each class,
// restoring the hash-cons invariant after unions have concatenated node
// lists.
func (g *Graph) dedupeAll() bool {
	changed := false
	for _, id := range g.sortedClassIDs() {
		cls := g.classes[id]
		seen := map[string]bool{}
		kept := cls.Nodes[:0]
		for _, n := range cls.Nodes {
			key := n.signature(g)
			if seen[key] {
				changed = true
				continue
			}
			seen[key] = true
			kept = append(kept, n)
		}
		cls.Nodes = kept
	}
	return changed
}

func (g *Graph) fireModify() bool {
	changed := false
	for _, id := range g.sortedClassIDs() {
		if modifyAnalysis(g, id) {
			changed = true
		}
	}
	return changed
}
