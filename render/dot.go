// Package render implements the optional diagnostic renderer of §6: it
// takes an adjacency map and a filename stem and emits a DOT graph, the way
// the retrieved teacher's own graphviz.go builds a DOT string with a
// strings.Builder. The core checker never imports this package; it is a
// collaborator the driver wires in behind --draw.
package render

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// palette is a fixed, cyclic set of Graphviz colour names; node i is
// coloured palette[i % len(palette)].
var palette = []string{
	"lightblue", "lightgreen", "lightyellow", "lightpink",
	"lightgrey", "lightsalmon", "lightcyan", "plum",
}

// DOT renders adjacency as a DOT graph: circular nodes, "vee" arrowheads, a
// left-to-right layout, and node colours drawn cyclically from palette.
// labels, if non-nil, overrides a node's default "n<id>" label.
func DOT(adjacency map[int][]int, labels map[int]string) string {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle, style=filled];\n")
	sb.WriteString("  edge [arrowhead=vee];\n\n")

	for _, id := range sortedNodeIDs(adjacency) {
		label := labels[id]
		if label == "" {
			label = fmt.Sprintf("n%d", id)
		}
		colour := palette[((id%len(palette))+len(palette))%len(palette)]
		sb.WriteString(fmt.Sprintf("  n%d [label=%q, fillcolor=%q];\n", id, label, colour))
	}
	sb.WriteString("\n")

	for _, id := range sortedNodeIDs(adjacency) {
		succs := append([]int(nil), adjacency[id]...)
		sort.Ints(succs)
		for _, s := range succs {
			sb.WriteString(fmt.Sprintf("  n%d -> n%d;\n", id, s))
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

func sortedNodeIDs(adjacency map[int][]int) []int {
	ids := make([]int, 0, len(adjacency))
	for id := range adjacency {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// WriteFile renders adjacency and writes it to "<stem>.dot".
func WriteFile(stem string, adjacency map[int][]int, labels map[int]string) error {
	path := stem + ".dot"
	if err := os.WriteFile(path, []byte(DOT(adjacency, labels)), 0o644); err != nil {
		return fmt.Errorf("render: could not write %q: %w", path, err)
	}
	return nil
}
