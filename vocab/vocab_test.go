package vocab

import (
	"testing"

	"github.com/jearias/tccmchecker/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictsOfMutexClass(t *testing.T) {
	v, err := New([]string{"da=0", "da=5", "da=10"}, [][]string{{"da=0", "da=5", "da=10"}})
	require.NoError(t, err)

	conflicts := v.ConflictsOf("da=0")
	assert.ElementsMatch(t, []string{"da=5", "da=10"}, conflicts)
}

func TestConflictsOfIndependentProposition(t *testing.T) {
	v, err := New([]string{"tc"}, nil)
	require.NoError(t, err)
	assert.Empty(t, v.ConflictsOf("tc"))
}

func TestNewRejectsUndeclaredMutexMember(t *testing.T) {
	_, err := New([]string{"da=0"}, [][]string{{"da=0", "da=5"}})
	require.Error(t, err)
}

func TestNewRejectsPropositionInTwoClasses(t *testing.T) {
	_, err := New([]string{"a", "b", "c"}, [][]string{{"a", "b"}, {"b", "c"}})
	require.Error(t, err)
}

func TestAssertClosedRejectsUnknownProposition(t *testing.T) {
	v, err := New([]string{"p"}, nil)
	require.NoError(t, err)

	err = v.AssertClosed(formula.NewProp("q"))
	require.Error(t, err)

	err = v.AssertClosed(formula.NewEventually(formula.NewProp("p")))
	require.NoError(t, err)
}
