package productgraph

import (
	"testing"

	"github.com/jearias/tccmchecker/atom"
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/structure"
	"github.com/jearias/tccmchecker/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextObligations(t *testing.T) {
	a := formula.NewSet()
	a.Add(formula.NewNext(formula.NewProp("p")))
	a.Add(formula.NewProp("q"))

	obligations := NextObligations(a)
	require.Len(t, obligations, 1)
	assert.True(t, obligations[0].Equal(formula.NewProp("p")))
}

func TestEdgeSoundness(t *testing.T) {
	v, err := vocab.New([]string{"in=true", "x=1", "x=2"}, [][]string{{"x=1", "x=2"}})
	require.NoError(t, err)

	phi := formula.NewEventually(formula.NewAnd(
		formula.NewProp("in=true"),
		formula.NewNot(formula.NewNext(formula.NewProp("x=2"))),
	))
	cl := formula.Closure(phi)
	engine := atom.NewEngine(cl, v)
	allAtoms := engine.Atoms()

	s := structure.New()
	s.AddState(&structure.State{ID: "1", Store: []formula.Formula{formula.NewProp("in=true")}, Edges: []string{"2"}, Initial: true})
	s.AddState(&structure.State{ID: "2", Store: []formula.Formula{formula.NewProp("x=2"), formula.NewProp("in=true")}, Edges: []string{"2"}})

	table := atom.PerStateAtoms(engine, allAtoms, s)
	graph := Build(s, table)

	for n, succs := range graph.Succ {
		obligations := NextObligations(table.ByID[n].Atom)
		for _, m := range succs {
			for _, o := range obligations {
				assert.True(t, table.ByID[m].Atom.Contains(o), "edge %d->%d must satisfy next obligation %s", n, m, o)
			}
		}
	}
}

func TestBuildCoversEveryNode(t *testing.T) {
	v, err := vocab.New([]string{"p"}, nil)
	require.NoError(t, err)
	cl := formula.Closure(formula.NewProp("p"))
	engine := atom.NewEngine(cl, v)

	s := structure.New()
	s.AddState(&structure.State{ID: "1", Store: []formula.Formula{formula.NewProp("p")}, Edges: []string{"1"}, Initial: true})

	table := atom.PerStateAtoms(engine, engine.Atoms(), s)
	graph := Build(s, table)

	for _, n := range table.NodesOf("1") {
		_, ok := graph.Succ[n]
		assert.True(t, ok, "every surviving node must have an entry in the product graph")
	}
}
