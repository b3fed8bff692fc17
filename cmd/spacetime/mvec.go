package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
)

var mvecCmd = &cobra.Command{
	Use:   "mvec <index> [index...]",
	Short: "Build a multivector and apply conjugations or projections",
	Long: "mvec builds a multivector with one magnitude-1 term per argument\n" +
		"(e.g. mvec 23 31 12), then applies the requested transforms in the\n" +
		"order: square, conjugation, projection, simplify.",
	Args: cobra.MinimumNArgs(1),
	RunE: runMvec,
}

func init() {
	mvecCmd.Flags().Bool("square", false, "replace M with the full product M ^ M")
	mvecCmd.Flags().String("conjugate", "", "apply a conjugation: reverse|dagger|diamond|double_dagger|dual")
	mvecCmd.Flags().Int("project", -1, "keep only terms of this grade (0..4)")
	mvecCmd.Flags().Bool("simplify", true, "simplify before printing")

	rootCmd.AddCommand(mvecCmd)
}

func runMvec(cmd *cobra.Command, args []string) error {
	m := mvec.New()
	for _, arg := range args {
		a, err := algebra.ParseAlpha(arg)
		if err != nil {
			return err
		}
		m.Push(mvec.NewTerm(a))
	}

	if square, _ := cmd.Flags().GetBool("square"); square {
		m = mvec.Full(m, m)
	}

	if conj, _ := cmd.Flags().GetString("conjugate"); conj != "" {
		switch conj {
		case "reverse":
			m = mvec.Reverse(m)
		case "dagger", "hermitian":
			m = mvec.Hermitian(m)
		case "diamond":
			m = mvec.Diamond(m)
		case "double_dagger":
			m = mvec.DoubleDagger(m)
		case "dual":
			m = mvec.Dual(m)
		default:
			return fmt.Errorf("unknown conjugation %q", conj)
		}
	}

	if grade, _ := cmd.Flags().GetInt("project"); grade >= 0 {
		if grade > 4 {
			return fmt.Errorf("projection grade must be 0..4, got %d", grade)
		}
		m = m.Project(grade)
	}

	if simplify, _ := cmd.Flags().GetBool("simplify"); simplify {
		m = m.Simplify()
	}

	fmt.Println(m)

	return nil
}
