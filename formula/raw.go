package formula

import (
	"fmt"
	"strings"
)

// RawNode mirrors the original source's dict-shaped formula representation:
// a connective token paired with either a proposition name, a single child
// (unary connectives), or a pair of children (And/Or). The original format
// stored siblings as map entries and padded a repeated connective key with a
// leading space (e.g. " ~" next to "~") purely to avoid a Python dict key
// collision; RawNode keeps operands as an explicit pair instead, but Conn is
// still accepted with that padding so literal-transcriptions of the
// original examples can be normalised rather than rewritten.
type RawNode struct {
	Conn  string
	Prop  string
	Child *RawNode
	Pair  [2]*RawNode
}

// NormalizeConnective strips the whitespace padding described above. Every
// classification in this package operates on the normalised token; nothing
// downstream ever sees a padded key.
func NormalizeConnective(raw string) string {
	return strings.TrimSpace(raw)
}

// FromRaw builds a Formula from a RawNode, normalising its connective key
// first.
func FromRaw(n *RawNode) (Formula, error) {
	if n == nil {
		return Formula{}, fmt.Errorf("formula: nil raw node")
	}
	switch NormalizeConnective(n.Conn) {
	case "":
		if n.Prop == "" && n.Child != nil && NormalizeConnective(n.Child.Conn) == "" {
			// The empty connective used as a unary tag around a proposition.
			return FromRaw(n.Child)
		}
		if n.Prop == "" {
			return Formula{}, fmt.Errorf("formula: raw proposition node missing a name")
		}
		return NewProp(n.Prop), nil
	case "~":
		body, err := rawChild(n)
		if err != nil {
			return Formula{}, err
		}
		return NewNot(body), nil
	case "o":
		body, err := rawChild(n)
		if err != nil {
			return Formula{}, err
		}
		return NewNext(body), nil
	case "<>":
		body, err := rawChild(n)
		if err != nil {
			return Formula{}, err
		}
		return NewEventually(body), nil
	case "[]":
		body, err := rawChild(n)
		if err != nil {
			return Formula{}, err
		}
		return NewAlways(body), nil
	case "^":
		left, right, err := rawPair(n)
		if err != nil {
			return Formula{}, err
		}
		return NewAnd(left, right), nil
	case "v":
		left, right, err := rawPair(n)
		if err != nil {
			return Formula{}, err
		}
		return NewOr(left, right), nil
	default:
		return Formula{}, fmt.Errorf("formula: unsupported raw connective %q", n.Conn)
	}
}

func rawChild(n *RawNode) (Formula, error) {
	if n.Child == nil {
		return Formula{}, fmt.Errorf("formula: raw node %q missing its child", n.Conn)
	}
	return FromRaw(n.Child)
}

func rawPair(n *RawNode) (Formula, Formula, error) {
	if n.Pair[0] == nil || n.Pair[1] == nil {
		return Formula{}, Formula{}, fmt.Errorf("formula: raw node %q missing an operand", n.Conn)
	}
	left, err := FromRaw(n.Pair[0])
	if err != nil {
		return Formula{}, Formula{}, err
	}
	right, err := FromRaw(n.Pair[1])
	if err != nil {
		return Formula{}, Formula{}, err
	}
	return left, right, nil
}

// RawProp is a convenience constructor for a RawNode proposition leaf.
func RawProp(name string) *RawNode { return &RawNode{Prop: name} }

// Un builds a unary RawNode, with conn optionally whitespace-padded as the
// original format sometimes did.
func Un(conn string, child *RawNode) *RawNode { return &RawNode{Conn: conn, Child: child} }

// Bin builds a binary (And/Or) RawNode.
func Bin(conn string, left, right *RawNode) *RawNode {
	return &RawNode{Conn: conn, Pair: [2]*RawNode{left, right}}
}
