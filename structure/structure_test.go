package structure

import (
	"testing"

	"github.com/jearias/tccmchecker/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsUndefinedEdgeTarget(t *testing.T) {
	s := New()
	s.AddState(&State{ID: "1", Edges: []string{"2"}, Initial: true})
	require.Error(t, s.Validate())
}

func TestValidateAcceptsClosedStructure(t *testing.T) {
	s := New()
	s.AddState(&State{ID: "1", Edges: []string{"1"}, Initial: true})
	require.NoError(t, s.Validate())
}

func TestInitialStates(t *testing.T) {
	s := New()
	s.AddState(&State{ID: "1", Initial: true})
	s.AddState(&State{ID: "2", Initial: false})
	s.AddState(&State{ID: "3", Initial: true})
	assert.Equal(t, []string{"1", "3"}, s.InitialStates())
}

func TestPropositions(t *testing.T) {
	s := New()
	s.AddState(&State{ID: "1", Store: []formula.Formula{formula.NewProp("b"), formula.NewProp("a")}})
	assert.Equal(t, []string{"a", "b"}, s.Propositions())
}
