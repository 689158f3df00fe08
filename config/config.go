// Package config loads the checker's only tunable — the proposition
// vocabulary and its mutex classes — and an optional tcc-structure, from a
// YAML document, using goccy/go-yaml the way the retrieved signadot
// tony-format project loads its own build configuration.
package config

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/structure"
	"github.com/jearias/tccmchecker/vocab"
)

// Document is the top-level shape of a checker YAML file: a vocabulary
// (propositions, mutex_classes) plus an optional inline structure.
type Document struct {
	Propositions []string         `yaml:"propositions"`
	MutexClasses [][]string       `yaml:"mutex_classes"`
	Structure    *StructureConfig `yaml:"structure,omitempty"`
}

// StructureConfig is the YAML shape of a tcc-structure: a list of states,
// each carrying a store of formula expressions (in formula.Parse syntax),
// successor edges, and an initial flag.
type StructureConfig struct {
	States []StateConfig `yaml:"states"`
}

// StateConfig is one YAML state entry.
type StateConfig struct {
	ID       string   `yaml:"id"`
	Store    []string `yaml:"store"`
	Edges    []string `yaml:"edges"`
	Initial  bool     `yaml:"initial"`
	Normal   []string `yaml:"normal,omitempty"`
	Temporal []string `yaml:"temporal,omitempty"`
}

// Load reads and parses a YAML document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not read %q: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: could not decode %q: %w", path, err)
	}
	return &doc, nil
}

// Vocabulary builds a vocab.Vocabulary from the document.
func (d *Document) Vocabulary() (*vocab.Vocabulary, error) {
	return vocab.New(d.Propositions, d.MutexClasses)
}

// BuildStructure builds a structure.Structure from the document's inline
// Structure section, parsing each store entry with formula.Parse.
func (d *Document) BuildStructure() (*structure.Structure, error) {
	if d.Structure == nil {
		return nil, fmt.Errorf("config: document has no structure section")
	}
	s := structure.New()
	for _, sc := range d.Structure.States {
		st := &structure.State{
			ID:       sc.ID,
			Edges:    sc.Edges,
			Initial:  sc.Initial,
			Normal:   sc.Normal,
			Temporal: sc.Temporal,
		}
		for _, expr := range sc.Store {
			f, err := formula.Parse(expr)
			if err != nil {
				return nil, fmt.Errorf("config: state %q: store entry %q: %w", sc.ID, expr, err)
			}
			st.Store = append(st.Store, f)
		}
		s.AddState(st)
	}
	return s, nil
}
