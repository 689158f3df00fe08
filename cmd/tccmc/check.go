package main

import (
	"fmt"
	"os"

	"github.com/jearias/tccmchecker/checker"
	"github.com/jearias/tccmchecker/config"
	"github.com/jearias/tccmchecker/examples"
	"github.com/jearias/tccmchecker/formula"
	"github.com/jearias/tccmchecker/render"
	"github.com/jearias/tccmchecker/structure"
	"github.com/jearias/tccmchecker/vocab"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	checkCmd.Flags().String("structure", "", "built-in example name (in-x, s3, s4, s5, canonical) or path to a YAML structure file")
	checkCmd.Flags().String("formula", "", "formula expression, or a built-in name (s1, s2, s3, s4, s5) matching --structure")
	checkCmd.Flags().String("config", "", "path to a YAML vocabulary document (ignored for built-in structures; defaults to the --structure file)")
	checkCmd.Flags().Bool("draw", false, "render the product graph and each non-trivial SCC subgraph to DOT")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a structure satisfies a formula.",
	Run:   runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	structureName := GetString(cmd, "structure")
	formulaArg := GetString(cmd, "formula")
	configPath := GetString(cmd, "config")
	draw := GetFlag(cmd, "draw")

	if structureName == "" {
		fmt.Fprintln(os.Stderr, "check: --structure is required")
		os.Exit(1)
	}

	s, v, phi, err := resolveInputs(structureName, formulaArg, configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "check:", err)
		os.Exit(1)
	}

	satisfied, result, err := checker.Satisfies(phi, s, v)
	if err != nil {
		fmt.Fprintln(os.Stderr, "check:", err)
		os.Exit(1)
	}

	log.WithFields(log.Fields{
		"closure_size": len(result.Bundle.Closure),
		"nodes":        len(result.Bundle.Atoms.ByID),
		"sccs":         len(result.Bundle.SCCs),
	}).Debug("check complete")

	if satisfied {
		fmt.Println("satisfied")
	} else {
		fmt.Println("not satisfied")
	}

	if draw {
		if err := drawDiagnostics(structureName, result); err != nil {
			fmt.Fprintln(os.Stderr, "check: draw:", err)
			os.Exit(1)
		}
	}
}

func resolveInputs(structureName, formulaArg, configPath string) (*structure.Structure, *vocab.Vocabulary, formula.Formula, error) {
	switch structureName {
	case "in-x":
		v, err := examples.InXVocabulary()
		if err != nil {
			return nil, nil, formula.Formula{}, err
		}
		s := examples.InXStructure()
		phi, err := resolveBuiltinFormula(formulaArg, v, map[string]formula.Formula{
			"s1": examples.S1Formula(),
			"s2": examples.S2Formula(),
		})
		return s, v, phi, err
	case "s3":
		v, err := examples.S3Vocabulary()
		if err != nil {
			return nil, nil, formula.Formula{}, err
		}
		s := examples.S3Structure()
		phi, err := resolveBuiltinFormula(formulaArg, v, map[string]formula.Formula{"s3": examples.S3Formula()})
		return s, v, phi, err
	case "s4":
		v, err := examples.DAVocabulary()
		if err != nil {
			return nil, nil, formula.Formula{}, err
		}
		s := examples.S4Structure()
		phi, err := resolveBuiltinFormula(formulaArg, v, map[string]formula.Formula{"s4": examples.S4Formula()})
		return s, v, phi, err
	case "s5":
		v, err := examples.BVocabulary()
		if err != nil {
			return nil, nil, formula.Formula{}, err
		}
		s := examples.S5Structure()
		phi, err := resolveBuiltinFormula(formulaArg, v, map[string]formula.Formula{"s5": examples.S5Formula()})
		return s, v, phi, err
	case "canonical":
		v, err := examples.CanonicalVocabulary()
		if err != nil {
			return nil, nil, formula.Formula{}, err
		}
		s, err := examples.CanonicalStructure()
		if err != nil {
			return nil, nil, formula.Formula{}, err
		}
		phi, err := resolveBuiltinFormula(formulaArg, v, nil)
		return s, v, phi, err
	default:
		return resolveFromFiles(structureName, formulaArg, configPath)
	}
}

func resolveBuiltinFormula(formulaArg string, v *vocab.Vocabulary, named map[string]formula.Formula) (formula.Formula, error) {
	if formulaArg == "" {
		return formula.Formula{}, fmt.Errorf("--formula is required")
	}
	if phi, ok := named[formulaArg]; ok {
		return phi, nil
	}
	phi, err := formula.Parse(formulaArg)
	if err != nil {
		return formula.Formula{}, err
	}
	if err := v.AssertClosed(phi); err != nil {
		return formula.Formula{}, err
	}
	return phi, nil
}

func resolveFromFiles(structurePath, formulaArg, configPath string) (*structure.Structure, *vocab.Vocabulary, formula.Formula, error) {
	if configPath == "" {
		configPath = structurePath
	}
	vocabDoc, err := config.Load(configPath)
	if err != nil {
		return nil, nil, formula.Formula{}, err
	}
	v, err := vocabDoc.Vocabulary()
	if err != nil {
		return nil, nil, formula.Formula{}, err
	}

	structDoc := vocabDoc
	if structurePath != configPath {
		structDoc, err = config.Load(structurePath)
		if err != nil {
			return nil, nil, formula.Formula{}, err
		}
	}
	s, err := structDoc.BuildStructure()
	if err != nil {
		return nil, nil, formula.Formula{}, err
	}

	if formulaArg == "" {
		return nil, nil, formula.Formula{}, fmt.Errorf("--formula is required")
	}
	phi, err := formula.Parse(formulaArg)
	if err != nil {
		return nil, nil, formula.Formula{}, err
	}
	if err := v.AssertClosed(phi); err != nil {
		return nil, nil, formula.Formula{}, err
	}
	return s, v, phi, nil
}

func drawDiagnostics(stem string, result *checker.Result) error {
	if err := render.WriteFile(stem+"-product", result.Bundle.ProductGraph.Succ, nil); err != nil {
		return err
	}
	for i, sccReport := range result.Bundle.SCCs {
		adj := make(map[int][]int, len(sccReport.Nodes))
		for _, n := range sccReport.Nodes {
			adj[n] = result.Bundle.ProductGraph.Succ[n]
		}
		if err := render.WriteFile(fmt.Sprintf("%s-scc-%d", stem, i), adj, nil); err != nil {
			return err
		}
	}
	return nil
}
