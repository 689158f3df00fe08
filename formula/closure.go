package formula

// Closure computes CL(phi): the set of subformulas that must be tracked to
// decide phi, as described in §4.2 of the design. The result is deduplicated
// by structural equality; recursion always strictly decreases the depth of
// the formula being expanded, so the walk terminates.
func Closure(phi Formula) *Set {
	set := NewSet()
	addClosure(phi, set)
	return set
}

// isLiteral reports whether f is a proposition or the negation of one -
// i.e. a literal over a proposition name, regardless of polarity.
func isLiteral(f Formula) bool {
	if f.conn == Prop {
		return true
	}
	return f.conn == Not && f.sub.conn == Prop
}

func literalPropName(f Formula) string {
	if f.conn == Prop {
		return f.prop
	}
	return f.sub.prop
}

func addClosure(f Formula, set *Set) {
	// Whenever the input is negative (~ wrapping a non-leaf, non-negation
	// formula), unwrap to the positive form first.
	g := f
	if g.IsNegative() {
		g = *g.sub
	}

	switch {
	case isLiteral(g):
		p := literalPropName(g)
		set.Add(NewProp(p))
		set.Add(NewNot(NewProp(p)))

	case g.conn == And:
		set.Add(g)
		set.Add(NewNot(g))
		addClosure(g.Left(), set)
		addClosure(g.Right(), set)

	case g.conn == Or:
		set.Add(g)
		set.Add(NewNot(g))
		addClosure(g.Left(), set)
		addClosure(g.Right(), set)

	case g.conn == Next:
		inner := g.Sub()
		set.Add(g)                      // o phi'
		set.Add(NewNot(g))              // ~o phi'
		set.Add(NewNext(NewNot(inner))) // o~phi'
		addClosure(inner, set)

	case g.conn == Eventually:
		inner := g.Sub()
		set.Add(g)                      // <>phi'
		set.Add(NewNot(g))              // ~<>phi'
		set.Add(NewNext(g))             // o<>phi'
		set.Add(NewNot(NewNext(g)))     // ~o<>phi'
		set.Add(NewNext(NewNot(g)))     // o~<>phi'
		addClosure(inner, set)

	case g.conn == Always:
		inner := g.Sub()
		set.Add(g)                  // []phi'
		set.Add(NewNot(g))          // ~[]phi'
		set.Add(NewNext(g))         // o[]phi'
		set.Add(NewNot(NewNext(g))) // ~o[]phi'
		set.Add(NewNext(NewNot(g))) // o~[]phi'
		addClosure(inner, set)
	}
}
