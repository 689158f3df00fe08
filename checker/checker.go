// Package checker orchestrates the full pipeline described in the design:
// phi -> Closure -> Atoms -> PerStateAtoms x TccStructure -> ProductGraph ->
// SCCs -> Verdict. It is the only package that wires every other component
// together; the core pipeline itself is pure and deterministic.
package checker

import (
	"errors"
	"fmt"

	"github.com/jearias/tccmchecker/atom"
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/productgraph"
	"github.com/jearias/tccmchecker/scc"
	"github.com/jearias/tccmchecker/structure"
	"github.com/jearias/tccmchecker/vocab"
	log "github.com/sirupsen/logrus"
)

// ErrMalformedStructure is returned by Check when s fails its own invariant
// (an edge to an undefined state, a blank required field).
var ErrMalformedStructure = errors.New("checker: malformed structure")

// ErrUnknownProposition is returned when phi or s's stores mention a
// proposition outside v, per the strict vocabulary closure redesign
// decision recorded in DESIGN.md.
var ErrUnknownProposition = errors.New("checker: unknown proposition")

// SCCReport is the self-fulfilment/entailment verdict for one non-trivial
// SCC, part of the optional diagnostic bundle.
type SCCReport struct {
	Nodes          []int
	SelfFulfilling bool
	Entails        bool
}

// Bundle is the optional diagnostic output described in §6: the closure,
// the per-state atom table, the product graph, and a flag per non-trivial
// SCC.
type Bundle struct {
	Closure      []formula.Formula
	Atoms        *atom.Table
	ProductGraph *productgraph.Graph
	SCCs         []SCCReport
}

// Result is the outcome of Check: the Boolean verdict of §4.5 (true iff
// some non-trivial SCC subgraph is both self-fulfilling and entails phi)
// plus the diagnostic bundle that produced it.
type Result struct {
	Verdict bool
	Bundle  Bundle
}

// Check runs the full tableau/automata-theoretic pipeline for phi against s
// under the proposition vocabulary v, and returns whether a witnessing
// initial run exists. Callers wanting the user-facing "phi is satisfied"
// answer negate phi first and negate the result, per §4.5's Verdict note.
func Check(phi formula.Formula, s *structure.Structure, v *vocab.Vocabulary) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStructure, err)
	}
	if err := v.AssertClosed(phi); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownProposition, err)
	}
	for _, id := range s.Order {
		if err := v.AssertClosed(s.States[id].Store...); err != nil {
			return nil, fmt.Errorf("%w: state %q: %v", ErrUnknownProposition, id, err)
		}
	}

	cl := formula.Closure(phi)
	log.WithField("size", cl.Len()).Debug("computed closure")

	engine := atom.NewEngine(cl, v)
	allAtoms := engine.Atoms()
	log.WithFields(log.Fields{
		"basic":     len(engine.Basic()),
		"non_basic": len(engine.NonBasic()),
		"atoms":     len(allAtoms),
	}).Debug("enumerated atoms")

	table := atom.PerStateAtoms(engine, allAtoms, s)
	log.WithField("nodes", len(table.ByID)).Debug("filtered per-state atoms")

	graph := productgraph.Build(s, table)

	isInitial := func(n int) bool {
		return s.States[table.ByID[n].State].Initial
	}
	var initialNodes []int
	for id := range table.ByID {
		if isInitial(id) {
			initialNodes = append(initialNodes, id)
		}
	}

	components := scc.Components(graph, initialNodes)
	log.WithField("non_trivial_sccs", len(components)).Debug("decomposed product graph")

	verdict := false
	reports := make([]SCCReport, 0, len(components))
	for _, c := range components {
		selfFulfilling := scc.SelfFulfilling(c, table, isInitial)
		entails := scc.Entails(c, table, isInitial, phi)
		if selfFulfilling && entails {
			verdict = true
		}
		reports = append(reports, SCCReport{
			Nodes:          c.Nodes,
			SelfFulfilling: selfFulfilling,
			Entails:        entails,
		})
	}

	return &Result{
		Verdict: verdict,
		Bundle: Bundle{
			Closure:      cl.Slice(),
			Atoms:        table,
			ProductGraph: graph,
			SCCs:         reports,
		},
	}, nil
}

// Satisfies is the driver-facing convenience wrapped around Check: it runs
// the checker on the negation of phi and reports the user-facing property
// satisfied iff the checker found no witness, per §4.5.
func Satisfies(phi formula.Formula, s *structure.Structure, v *vocab.Vocabulary) (bool, *Result, error) {
	res, err := Check(phi.Negate(), s, v)
	if err != nil {
		return false, nil, err
	}
	return !res.Verdict, res, nil
}
