package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/algebra"
	"github.com/katalvlaran/spacetime/logger"
)

var productCmd = &cobra.Command{
	Use:   "product <alpha> <alpha> [alpha...]",
	Short: "Chain full products of directed units",
	Long: "product parses each argument as a directed unit (p, 0..3 index\n" +
		"strings, optional sign, e.g. -31) and folds them left to right under\n" +
		"the full product, printing the final signed unit.",
	Args: cobra.MinimumNArgs(2),
	RunE: runProduct,
}

func init() {
	rootCmd.AddCommand(productCmd)
}

func runProduct(cmd *cobra.Command, args []string) error {
	alphas := make([]algebra.Alpha, len(args))
	for i, arg := range args {
		a, err := algebra.ParseAlpha(arg)
		if err != nil {
			return err
		}
		alphas[i] = a
	}

	acc := alphas[0]
	for _, a := range alphas[1:] {
		next := algebra.FullProduct(acc, a)
		logger.L().Debugw("product step", "left", acc.String(), "right", a.String(), "result", next.String())
		acc = next
	}

	fmt.Printf("%s = %s\n", strings.Join(args, " ^ "), acc)

	return nil
}
