// Package vocab declares the proposition vocabulary a formula and a
// structure are checked against: the atomic names a leaf may carry and the
// mutex classes that make some of them mutually exclusive.
package vocab

import (
	"fmt"

	"github.com/jearias/tccmchecker/formula"
)

// Vocabulary is a closed set of proposition names, partitioned into mutex
// classes. A proposition not named by any mutex class is independent: it has
// an empty conflict list.
type Vocabulary struct {
	props   map[string]bool
	classOf map[string]int
	classes [][]string
}

// New builds a Vocabulary from a flat list of proposition names and a list
// of mutex classes (each a set of names drawn from propositions). It returns
// an error if a mutex class mentions a name outside propositions, or if a
// name appears in more than one class.
func New(propositions []string, mutexClasses [][]string) (*Vocabulary, error) {
	v := &Vocabulary{
		props:   make(map[string]bool, len(propositions)),
		classOf: make(map[string]int),
	}
	for _, p := range propositions {
		v.props[p] = true
	}
	for i, class := range mutexClasses {
		members := make([]string, len(class))
		copy(members, class)
		for _, name := range class {
			if !v.props[name] {
				return nil, fmt.Errorf("vocab: mutex class %d names undeclared proposition %q", i, name)
			}
			if prev, ok := v.classOf[name]; ok {
				return nil, fmt.Errorf("vocab: proposition %q is in mutex classes %d and %d", name, prev, i)
			}
			v.classOf[name] = i
		}
		v.classes = append(v.classes, members)
	}
	return v, nil
}

// Has reports whether name is a declared proposition.
func (v *Vocabulary) Has(name string) bool {
	return v.props[name]
}

// Propositions returns the declared proposition names.
func (v *Vocabulary) Propositions() []string {
	out := make([]string, 0, len(v.props))
	for p := range v.props {
		out = append(out, p)
	}
	return out
}

// ConflictsOf returns the other members of name's mutex class, or nil if
// name is independent (not a member of any class). The caller combines this
// with the generic "negation already present" test to get the full conflict
// list described in the design: a proposition is inconsistent with an atom
// that already contains its own negation, or any literal returned here.
func (v *Vocabulary) ConflictsOf(name string) []string {
	class, ok := v.classOf[name]
	if !ok {
		return nil
	}
	members := v.classes[class]
	out := make([]string, 0, len(members)-1)
	for _, m := range members {
		if m != name {
			out = append(out, m)
		}
	}
	return out
}

// AssertClosed walks every proposition leaf reachable from fs and returns an
// error naming the first one not declared in v. This is the strict
// vocabulary closure check: a formula or a structure store may only mention
// propositions the vocabulary knows about.
func (v *Vocabulary) AssertClosed(fs ...formula.Formula) error {
	for _, f := range fs {
		if err := v.walkAssert(f); err != nil {
			return err
		}
	}
	return nil
}

func (v *Vocabulary) walkAssert(f formula.Formula) error {
	switch f.Connective() {
	case formula.Prop:
		if !v.Has(f.PropName()) {
			return fmt.Errorf("vocab: proposition %q is not declared", f.PropName())
		}
	case formula.Not, formula.Next, formula.Eventually, formula.Always:
		return v.walkAssert(f.Sub())
	case formula.And, formula.Or:
		if err := v.walkAssert(f.Left()); err != nil {
			return err
		}
		return v.walkAssert(f.Right())
	}
	return nil
}
