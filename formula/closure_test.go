package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// s1Formula is phi = <>(in=true ^ ~o x=2), the canonical worked example.
func s1Formula() Formula {
	return NewEventually(NewAnd(NewProp("in=true"), NewNot(NewNext(NewProp("x=2")))))
}

// normalForm rewrites ~~psi to psi and ~o~psi to o psi, throughout f. The
// closure adds o~psi but not ~o~psi, so it is closed under negation (and
// under re-closing) only up to these identities.
func normalForm(f Formula) Formula {
	switch f.Connective() {
	case Not:
		inner := normalForm(f.Sub())
		if inner.Connective() == Not {
			return inner.Sub()
		}
		if inner.Connective() == Next && inner.Sub().Connective() == Not {
			return NewNext(inner.Sub().Sub())
		}
		return NewNot(inner)
	case Next:
		return NewNext(normalForm(f.Sub()))
	case Eventually:
		return NewEventually(normalForm(f.Sub()))
	case Always:
		return NewAlways(normalForm(f.Sub()))
	case And:
		return NewAnd(normalForm(f.Left()), normalForm(f.Right()))
	case Or:
		return NewOr(normalForm(f.Left()), normalForm(f.Right()))
	default:
		return f
	}
}

func TestClosureClosedUnderNegation(t *testing.T) {
	cl := Closure(s1Formula())
	for _, f := range cl.Slice() {
		require.True(t, cl.Contains(normalForm(f.Negate())), "closure must contain the negation of %s", f)
	}
}

func TestClosureIdempotent(t *testing.T) {
	phi := s1Formula()
	cl1 := Closure(phi)

	// Lifting closure to a set of formulas: re-closing every member of
	// cl1 must not grow the set, once each result is taken in normal form.
	cl2 := NewSet()
	for _, f := range cl1.Slice() {
		for _, g := range Closure(f).Slice() {
			cl2.Add(normalForm(g))
		}
	}
	assert.Equal(t, cl1.Len(), cl2.Len())
}

func TestClosureContainsExpectedNextForms(t *testing.T) {
	phi := NewNext(NewProp("x=1"))
	cl := Closure(phi)

	assert.True(t, cl.Contains(NewNext(NewProp("x=1"))))
	assert.True(t, cl.Contains(NewNot(NewNext(NewProp("x=1")))))
	assert.True(t, cl.Contains(NewNext(NewNot(NewProp("x=1")))))
}

func TestClosureContainsExpectedEventuallyForms(t *testing.T) {
	phi := NewEventually(NewProp("p"))
	cl := Closure(phi)

	assert.True(t, cl.Contains(phi))
	assert.True(t, cl.Contains(phi.Negate()))
	assert.True(t, cl.Contains(NewNext(phi)))
	assert.True(t, cl.Contains(NewNot(NewNext(phi))))
	assert.True(t, cl.Contains(NewNext(NewNot(phi))))
	assert.True(t, cl.Contains(NewProp("p")))
	assert.True(t, cl.Contains(NewNot(NewProp("p"))))
}
