// Package atom enumerates the atoms of a closure and filters them against
// the store of each state of a tcc structure, as described in §4.3 of the
// design. It is the largest component of the checker: all of the subtle
// consistency reasoning about the tableau expansion rules lives here.
package atom

import (
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/vocab"
)

// Atom is a locally consistent subset of a closure, represented as a
// formula.Set so membership is a map lookup rather than a scan.
type Atom = formula.Set

// Engine enumerates and filters atoms for one closure.
type Engine struct {
	vocab    *vocab.Vocabulary
	basic    []formula.Formula
	nonBasic []formula.Formula
}

// NewEngine partitions cl into basic and non-basic formulas and returns an
// Engine ready to enumerate atoms against v.
func NewEngine(cl *formula.Set, v *vocab.Vocabulary) *Engine {
	e := &Engine{vocab: v}
	for _, f := range cl.Slice() {
		switch {
		case f.IsBasic():
			e.basic = append(e.basic, f)
		case f.Connective() == formula.Not:
			// Negations are never forced directly: a negated proposition or
			// a negated compound appears in an atom only as the complement
			// of its positive form, which is what the loops below produce.
		default:
			e.nonBasic = append(e.nonBasic, f)
		}
	}
	return e
}

// Basic returns the basic formulas of the closure, in closure order.
func (e *Engine) Basic() []formula.Formula { return e.basic }

// NonBasic returns the non-basic formulas of the closure, in closure order.
func (e *Engine) NonBasic() []formula.Formula { return e.nonBasic }

// Atoms generates every atom of the closure: all 2^|basic| sign assignments
// to the basic formulas, each completed by forcing the "o~psi" companion of
// every absent "o psi", then by deciding every non-basic formula for or
// against consistency.
func (e *Engine) Atoms() []*formula.Set {
	n := len(e.basic)
	total := 1 << uint(n)
	atoms := make([]*formula.Set, 0, total)
	for mask := 0; mask < total; mask++ {
		a := formula.NewSet()
		for i, bf := range e.basic {
			if mask&(1<<uint(i)) != 0 {
				a.Add(bf)
			} else {
				a.Add(bf.Negate())
			}
		}
		for _, bf := range e.basic {
			if bf.Connective() != formula.Next {
				continue
			}
			if !a.Contains(bf) {
				a.Add(formula.NewNext(bf.Sub().Negate()))
			}
		}
		for _, f := range e.nonBasic {
			if e.Consistent(f, a) {
				a.Add(f)
			} else {
				a.Add(f.Negate())
			}
		}
		atoms = append(atoms, a)
	}
	return atoms
}

// Consistent reports whether f can be added to the partial atom a without
// contradicting what a already holds, per the equations of §4.3. A formula
// whose negation is already literally present in a is never consistent,
// regardless of its shape; this is the tableau's basic sanity check and is
// applied before any connective-specific reasoning.
func (e *Engine) Consistent(f formula.Formula, a *formula.Set) bool {
	if a.Contains(f.Negate()) {
		return false
	}
	switch f.Connective() {
	case formula.Eventually:
		return a.Contains(formula.NewNext(f)) || e.Consistent(f.Sub(), a)
	case formula.Always:
		return a.Contains(formula.NewNext(f)) && e.Consistent(f.Sub(), a)
	case formula.And:
		return e.Consistent(f.Left(), a) && e.Consistent(f.Right(), a)
	case formula.Or:
		return e.Consistent(f.Left(), a) || e.Consistent(f.Right(), a)
	case formula.Next:
		// A next-obligation (basic, or "o" wrapping a compound such as
		// "<>psi") is not decomposed here: its truth is about the
		// successor state, resolved later by the product graph.
		return a.Contains(f)
	case formula.Prop:
		for _, conflict := range e.vocab.ConflictsOf(f.PropName()) {
			if a.Contains(formula.NewProp(conflict)) {
				return false
			}
		}
		return true
	case formula.Not:
		if f.Sub().Connective() == formula.Prop {
			// A negated proposition never needs its positive form present.
			return true
		}
		if f.Sub().Connective() == formula.Next {
			// Negative-next: consistency is literal membership, same as Next.
			return a.Contains(f)
		}
		return true
	default:
		return true
	}
}
