package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/mvec"
	"github.com/katalvlaran/spacetime/quantities"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively evaluate products and quotients",
	Long: "repl reads one expression per line: operands joined by ^ (full\n" +
		"product) or \\ (divide left into right). Operands are directed units\n" +
		"(p, 31, -023) or standard quantity names (G, Fields, B, E, T, A,\n" +
		"ZetB..ZetE, Even, Odd). Blank lines are ignored; exit with quit.",
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// standardQuantities resolves the named multivectors usable as REPL and
// calc-file operands.
var standardQuantities = map[string]func() mvec.MultiVector{
	"G":      quantities.G,
	"Fields": quantities.Fields,
	"Even":   quantities.EvenSubAlgebra,
	"Odd":    quantities.OddSubAlgebra,
	"B":      quantities.B,
	"E":      quantities.E,
	"T":      quantities.T,
	"A":      quantities.A,
	"ZetB":   quantities.ZetB,
	"ZetT":   quantities.ZetT,
	"ZetA":   quantities.ZetA,
	"ZetE":   quantities.ZetE,
}

func runRepl(cmd *cobra.Command, args []string) error {
	prompt := viper.GetString("repl.prompt")
	simplify := viper.GetBool("repl.simplify")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		result, err := evalLine(line, simplify)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}

// evalLine evaluates `a ^ b ^ c` style expressions left to right. The
// two operators cannot be mixed on one line; division binds the first
// operand as the divisor, matching the left \ right convention.
func evalLine(line string, simplify bool) (mvec.MultiVector, error) {
	divide := strings.Contains(line, "\\")
	if divide && strings.Contains(line, "^") {
		return mvec.MultiVector{}, fmt.Errorf("cannot mix ^ and \\ in one expression")
	}

	sep := "^"
	if divide {
		sep = "\\"
	}

	parts := strings.Split(line, sep)
	operands := make([]mvec.MultiVector, len(parts))
	for i, p := range parts {
		m, err := resolveOperand(strings.TrimSpace(p))
		if err != nil {
			return mvec.MultiVector{}, err
		}
		operands[i] = m
	}

	acc := operands[0]
	for _, m := range operands[1:] {
		if divide {
			acc = mvec.Divide(acc, m)
		} else {
			acc = mvec.Full(acc, m)
		}
	}

	if simplify {
		acc = acc.Simplify()
	}

	return acc, nil
}

func resolveOperand(token string) (mvec.MultiVector, error) {
	if token == "" {
		return mvec.MultiVector{}, fmt.Errorf("empty operand")
	}
	if builtin, ok := standardQuantities[token]; ok {
		return builtin(), nil
	}

	a, err := algebra.ParseAlpha(token)
	if err != nil {
		return mvec.MultiVector{}, err
	}

	m := mvec.New()
	m.Push(mvec.NewTerm(a))

	return m, nil
}
