package formula

// Set is an insertion-ordered collection of formulas deduplicated by
// structural fingerprint (Key). Membership and insertion are O(1) map
// operations; iteration follows insertion order so that output (closures,
// atoms, diagnostics) is deterministic across runs, as required by the
// determinism testable property.
type Set struct {
	order []Formula
	index map[string]int
}

// NewSet builds an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add inserts f if not already present. It returns true if f was newly
// added.
func (s *Set) Add(f Formula) bool {
	if _, ok := s.index[f.Key()]; ok {
		return false
	}
	s.index[f.Key()] = len(s.order)
	s.order = append(s.order, f)
	return true
}

// Contains reports whether f (by structural fingerprint) is in the set.
func (s *Set) Contains(f Formula) bool {
	_, ok := s.index[f.Key()]
	return ok
}

// Slice returns the formulas in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *Set) Slice() []Formula {
	out := make([]Formula, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of distinct formulas in the set.
func (s *Set) Len() int {
	return len(s.order)
}
