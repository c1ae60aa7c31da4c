package egraph

import "juniper/internal/expr"

// Match pairs a matched class with the substitution that produced it.
type Match struct {
	Class ID
	Subst Subst
}

// Search returns every (class, substitution) pair in the graph where pat
// matches, respecting congruence: a pattern variable bound to a class in one
// branch must resolve to the same canonical class everywhere else it
// recurs.
func (g *Graph) Search(pat *expr.Term) []Match {
	var out []Match
	for _, id := range g.sortedClassIDs() {
		for _, s := range matchClass(g, pat, id, Subst{}) {
			out = append(out, Match{Class: id, Subst: s})
		}
	}
	return out
}

// matchClass returns every extension of subst produced by matching pat
// against some e-node in the class canonically identified by id.
func matchClass(g *Graph, pat *expr.Term, id ID, subst Subst) []Subst {
	id = g.find(id)

	if pat.Kind == expr.PatVar {
		if bound, ok := subst[pat.Pat]; ok {
			if g.find(bound) == id {
				return []Subst{subst}
			}
			return nil
		}
		s2 := subst.clone()
		s2[pat.Pat] = id
		return []Subst{s2}
	}

	cls, ok := g.classes[id]
	if !ok {
		return nil
	}

	var out []Subst
	for _, n := range cls.Nodes {
		if !headMatches(n, pat) {
			continue
		}
		if len(pat.Args) == 0 {
			out = append(out, subst.clone())
			continue
		}
		results := []Subst{subst}
		for i, argPat := range pat.Args {
			var next []Subst
			for _, s := range results {
				next = append(next, matchClass(g, argPat, n.Children[i], s)...)
			}
			results = next
			if len(results) == 0 {
				break
			}
		}
		out = append(out, results...)
	}
	return out
}

// headMatches reports whether node n could possibly match the top of
// pattern pat, ignoring children.
func headMatches(n ENode, pat *expr.Term) bool {
	if n.Kind != pat.Kind {
		return false
	}
	switch pat.Kind {
	case expr.Const:
		return n.Rat.Equal(pat.Rat)
	case expr.Var:
		return n.Name == pat.Name
	default:
		return true
	}
}
