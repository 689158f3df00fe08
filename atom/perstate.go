package atom

import (
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/structure"
)

// Node is a model-checking node: a (state, atom) pair identified by a small
// integer. ID assignment is the sole identity used downstream, per §3.
type Node struct {
	ID    int
	State string
	Atom  *formula.Set
}

// Table is the result of PerStateAtoms: the surviving nodes per state, and
// the total id -> node mapping that ProductGraph and SCCSearch consume.
type Table struct {
	ByState map[string][]int
	ByID    map[int]*Node
}

// NodesOf returns the node ids surviving at state id, or nil if none did.
func (t *Table) NodesOf(stateID string) []int {
	return t.ByState[stateID]
}

// PerStateAtoms filters the full atom list against each state's store, per
// §4.3. For each state, every surviving atom is refined in place (some
// formulas get added to it as forced consequences of consistency with the
// store) so the atom reflects both the closure-level tableau and the
// concrete facts true in that state. Surviving atoms across all states are
// then assigned contiguous integer ids in state-iteration order, starting
// at 1.
func PerStateAtoms(e *Engine, atoms []*formula.Set, s *structure.Structure) *Table {
	t := &Table{
		ByState: make(map[string][]int),
		ByID:    make(map[int]*Node),
	}
	nextID := 1
	for _, stateID := range s.Order {
		st := s.States[stateID]
		survivors := cloneAtoms(atoms)
		for _, prop := range st.Store {
			kept := survivors[:0]
			for _, a := range survivors {
				if e.Consistent(prop, a) {
					if prop.Connective() == formula.And {
						a.Add(prop.Left())
						a.Add(prop.Right())
					}
					a.Add(prop)
					kept = append(kept, a)
				}
			}
			survivors = kept
		}
		for _, a := range survivors {
			id := nextID
			nextID++
			t.ByState[stateID] = append(t.ByState[stateID], id)
			t.ByID[id] = &Node{ID: id, State: stateID, Atom: a}
		}
	}
	return t
}

func cloneAtoms(atoms []*formula.Set) []*formula.Set {
	out := make([]*formula.Set, len(atoms))
	for i, a := range atoms {
		out[i] = formula.NewSet()
		for _, f := range a.Slice() {
			out[i].Add(f)
		}
	}
	return out
}
