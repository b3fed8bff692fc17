package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/calc"
	"github.com/katalvlaran/spacetime/logger"
)

var calcCmd = &cobra.Command{
	Use:   "calc <file.toml>",
	Short: "Run a declarative calculation file",
	Long: "calc loads a TOML calculation file (named multivectors plus a step\n" +
		"pipeline of products, conjugations and projections) and prints every\n" +
		"step's result in order.",
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	c, err := calc.Load(args[0])
	if err != nil {
		return err
	}

	if title := c.Title(); title != "" {
		pterm.DefaultSection.Println(title)
	}

	results, runErr := c.Run()
	for _, r := range results {
		label := fmt.Sprintf("step %d", r.Index)
		if r.Name != "" {
			label = fmt.Sprintf("step %d -> %s", r.Index, r.Name)
		}
		pterm.DefaultBasicText.Println(label)
		fmt.Println(r.Value)
	}
	if runErr != nil {
		logger.L().Errorw("calculation aborted", "file", args[0], "error", runErr)
		return runErr
	}

	return nil
}
