// Package scc decomposes a product graph into strongly connected
// components using an external SCC provider, then tests each non-trivial
// component for self-fulfilment and entailment, as described in §4.5 of the
// design.
//
// The SCC provider itself is treated as a black box, exactly as the design
// calls for: "given a mapping from node to successors, return a list of
// components". Here that box is gonum's Tarjan implementation, fed a
// simple.DirectedGraph built from the product graph.
package scc

import (
	"github.com/jearias/tccmchecker/atom"
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/productgraph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Subgraph is a non-trivial SCC together with its induced adjacency (plus
// initial-node entry edges) and the two tests run against it.
type Subgraph struct {
	Nodes          []int
	Adjacency      map[int][]int
	SelfFulfilling bool
	Entails        bool
}

// Components decomposes g into strongly connected components, discards
// trivial ones (a singleton with no self-loop), and returns the rest as
// Subgraphs with their adjacency built per §4.5: for each member, the edges
// staying inside the component, plus an entry edge from every global
// initial node whose successors intersect the component.
func Components(g *productgraph.Graph, initialNodes []int) []*Subgraph {
	dg := simple.NewDirectedGraph()
	for n := range g.Succ {
		dg.AddNode(simple.Node(n))
	}
	for n, succs := range g.Succ {
		for _, m := range succs {
			// simple.DirectedGraph rejects self edges; a self loop does not
			// change SCC membership, and isTrivial reads it from g.Succ.
			if n == m {
				continue
			}
			dg.SetEdge(simple.Edge{F: simple.Node(n), T: simple.Node(m)})
		}
	}

	rawSCCs := topo.TarjanSCC(dg)
	var subgraphs []*Subgraph
	for _, component := range rawSCCs {
		nodes := make([]int, len(component))
		for i, n := range component {
			nodes[i] = int(n.ID())
		}
		if isTrivial(nodes, g.Succ) {
			continue
		}
		subgraphs = append(subgraphs, buildSubgraph(nodes, g, initialNodes))
	}
	return subgraphs
}

func isTrivial(nodes []int, succ map[int][]int) bool {
	if len(nodes) != 1 {
		return false
	}
	n := nodes[0]
	for _, m := range succ[n] {
		if m == n {
			return false
		}
	}
	return true
}

func buildSubgraph(nodes []int, g *productgraph.Graph, initialNodes []int) *Subgraph {
	members := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		members[n] = true
	}
	adj := make(map[int][]int, len(nodes))
	for _, n := range nodes {
		for _, m := range g.Succ[n] {
			if members[m] {
				adj[n] = append(adj[n], m)
			}
		}
	}
	for _, q := range initialNodes {
		var entry []int
		for _, m := range g.Succ[q] {
			if members[m] {
				entry = append(entry, m)
			}
		}
		if len(entry) > 0 {
			adj[q] = append(adj[q], entry...)
		}
	}
	return &Subgraph{Nodes: nodes, Adjacency: adj}
}

// SelfFulfilling implements §4.5: every non-initial node n in the subgraph
// must, for every "<> g" in atom(n), have some non-initial node n' in the
// subgraph with g in atom(n').
func SelfFulfilling(sg *Subgraph, t *atom.Table, isInitial func(int) bool) bool {
	members := make(map[int]bool, len(sg.Nodes))
	for _, n := range sg.Nodes {
		members[n] = true
	}
	for n := range members {
		if isInitial(n) {
			continue
		}
		for _, f := range t.ByID[n].Atom.Slice() {
			if f.Connective() != formula.Eventually {
				continue
			}
			discharged := false
			for m := range members {
				if isInitial(m) {
					continue
				}
				if t.ByID[m].Atom.Contains(f.Sub()) {
					discharged = true
					break
				}
			}
			if !discharged {
				return false
			}
		}
	}
	return true
}

// Entails implements §4.5: phi holds iff some initial node of the subgraph
// contains phi in its atom.
func Entails(sg *Subgraph, t *atom.Table, isInitial func(int) bool, phi formula.Formula) bool {
	for _, n := range sg.Nodes {
		if isInitial(n) && t.ByID[n].Atom.Contains(phi) {
			return true
		}
	}
	for q := range sg.Adjacency {
		if isInitial(q) && t.ByID[q].Atom.Contains(phi) {
			return true
		}
	}
	return false
}
