package scc

import (
	"testing"

	"github.com/jearias/tccmchecker/atom"
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/productgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrivialSingletonRejected(t *testing.T) {
	g := &productgraph.Graph{Succ: map[int][]int{1: nil, 2: {1}}}
	components := Components(g, nil)
	for _, c := range components {
		assert.NotEqual(t, []int{1}, c.Nodes, "a singleton with no self-loop must be discarded")
	}
}

func TestSelfLoopSingletonIsNonTrivial(t *testing.T) {
	g := &productgraph.Graph{Succ: map[int][]int{1: {1}}}
	components := Components(g, []int{1})
	require.Len(t, components, 1)
	assert.Equal(t, []int{1}, components[0].Nodes)
}

func TestSelfFulfillingRequiresWitnessInLoop(t *testing.T) {
	table := &atom.Table{ByID: map[int]*atom.Node{}}
	ev := formula.NewEventually(formula.NewProp("p"))

	atomWithObligation := formula.NewSet()
	atomWithObligation.Add(ev)
	table.ByID[1] = &atom.Node{ID: 1, State: "s", Atom: atomWithObligation}

	atomWithWitness := formula.NewSet()
	atomWithWitness.Add(formula.NewProp("p"))
	table.ByID[2] = &atom.Node{ID: 2, State: "s", Atom: atomWithWitness}

	isInitial := func(int) bool { return false }

	sgWithWitness := &Subgraph{Nodes: []int{1, 2}}
	assert.True(t, SelfFulfilling(sgWithWitness, table, isInitial))

	sgWithoutWitness := &Subgraph{Nodes: []int{1}}
	assert.False(t, SelfFulfilling(sgWithoutWitness, table, isInitial))
}

func TestEntailsChecksInitialNodesOnly(t *testing.T) {
	phi := formula.NewProp("p")
	table := &atom.Table{ByID: map[int]*atom.Node{}}

	withPhi := formula.NewSet()
	withPhi.Add(phi)
	table.ByID[1] = &atom.Node{ID: 1, Atom: withPhi}

	without := formula.NewSet()
	table.ByID[2] = &atom.Node{ID: 2, Atom: without}

	isInitial := func(n int) bool { return n == 2 }

	sg := &Subgraph{Nodes: []int{1, 2}}
	assert.False(t, Entails(sg, table, isInitial, phi), "node 1 has phi but is not initial")

	isInitialBoth := func(int) bool { return true }
	assert.True(t, Entails(sg, table, isInitialBoth, phi), "node 1 is initial and has phi, though node 2 lacks it")

	withPhi2 := formula.NewSet()
	withPhi2.Add(phi)
	table.ByID[2].Atom = withPhi2
	assert.True(t, Entails(sg, table, isInitialBoth, phi))
}
