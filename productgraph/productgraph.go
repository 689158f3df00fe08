// Package productgraph builds the model-checking graph: the product of tcc
// states and their surviving atoms, with edges that preserve next
// obligations, as described in §4.4 of the design.
package productgraph

import (
	"github.com/jearias/tccmchecker/atom"
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/structure"
)

// Graph maps a node id to the ids of its successors.
type Graph struct {
	Succ  map[int][]int
	Table *atom.Table
}

// NextObligations returns the set of formulas N(A): every psi such that
// "o psi" is a member of atom a.
func NextObligations(a *formula.Set) []formula.Formula {
	var out []formula.Formula
	for _, f := range a.Slice() {
		if f.Connective() == formula.Next {
			out = append(out, f.Sub())
		}
	}
	return out
}

// Build constructs the product graph over s and t: for each node n at state
// s' with atom A, an edge n -> m is added for every tcc successor state s''
// of s' and every node m at s'' whose atom contains, literally, every
// formula of N(A).
func Build(s *structure.Structure, t *atom.Table) *Graph {
	g := &Graph{Succ: make(map[int][]int), Table: t}
	for _, stateID := range s.Order {
		st := s.States[stateID]
		for _, n := range t.NodesOf(stateID) {
			node := t.ByID[n]
			obligations := NextObligations(node.Atom)
			for _, succState := range st.Edges {
				for _, m := range t.NodesOf(succState) {
					target := t.ByID[m]
					if satisfiesAll(obligations, target.Atom) {
						g.Succ[n] = append(g.Succ[n], m)
					}
				}
			}
		}
		// Every node gets an entry, even with no successors, so downstream
		// consumers can iterate the full node set from the graph alone.
		for _, n := range t.NodesOf(stateID) {
			if _, ok := g.Succ[n]; !ok {
				g.Succ[n] = nil
			}
		}
	}
	return g
}

func satisfiesAll(obligations []formula.Formula, a *formula.Set) bool {
	for _, o := range obligations {
		if !a.Contains(o) {
			return false
		}
	}
	return true
}
