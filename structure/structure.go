// Package structure implements the tcc-structure data model: a labelled
// directed graph of states, each carrying a propositional store, successor
// edges, and an initial flag.
package structure

import (
	"fmt"
	"sort"

	"github.com/jearias/tccmchecker/formula"
)

// State is one tcc-state. Normal and Temporal are carried through untouched;
// the core never inspects them.
type State struct {
	ID       string
	Store    []formula.Formula
	Edges    []string
	Initial  bool
	Normal   []string
	Temporal []string
}

// Structure is a labelled directed graph of States, keyed by ID. Order holds
// the IDs in the order states were added, so downstream passes that iterate
// "every state" do so deterministically.
type Structure struct {
	States map[string]*State
	Order  []string
}

// New builds an empty Structure.
func New() *Structure {
	return &Structure{States: make(map[string]*State)}
}

// AddState inserts st, replacing any existing state with the same ID.
func (s *Structure) AddState(st *State) {
	if _, exists := s.States[st.ID]; !exists {
		s.Order = append(s.Order, st.ID)
	}
	s.States[st.ID] = st
}

// Validate checks the structure invariant of §3: every state reachable by
// Edges exists in the structure. It also checks that every edge target is
// non-empty, since a malformed structure with blank edges is a construction
// bug rather than a valid but atom-less state.
func (s *Structure) Validate() error {
	for _, id := range s.Order {
		st := s.States[id]
		for _, to := range st.Edges {
			if to == "" {
				return fmt.Errorf("structure: state %q has a blank edge target", id)
			}
			if _, ok := s.States[to]; !ok {
				return fmt.Errorf("structure: state %q has edge to undefined state %q", id, to)
			}
		}
	}
	return nil
}

// InitialStates returns the IDs of every initial state, in Order.
func (s *Structure) InitialStates() []string {
	var out []string
	for _, id := range s.Order {
		if s.States[id].Initial {
			out = append(out, id)
		}
	}
	return out
}

// Propositions returns the set of distinct proposition names mentioned by
// any state's store, sorted for deterministic iteration.
func (s *Structure) Propositions() []string {
	seen := make(map[string]bool)
	for _, id := range s.Order {
		for _, f := range s.States[id].Store {
			collectPropNames(f, seen)
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func collectPropNames(f formula.Formula, seen map[string]bool) {
	switch f.Connective() {
	case formula.Prop:
		seen[f.PropName()] = true
	case formula.Not, formula.Next, formula.Eventually, formula.Always:
		collectPropNames(f.Sub(), seen)
	case formula.And, formula.Or:
		collectPropNames(f.Left(), seen)
		collectPropNames(f.Right(), seen)
	}
}
