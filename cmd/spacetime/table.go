package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/algebra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the 16x16 Cayley table of the full product",
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	forms := algebra.AllowedForms()

	header := make([]string, 0, len(forms)+1)
	header = append(header, "^")
	for _, f := range forms {
		header = append(header, "a"+f.String())
	}

	data := pterm.TableData{header}
	for _, rowForm := range forms {
		left, err := algebra.NewAlpha(algebra.SignPos, rowForm)
		if err != nil {
			return err
		}

		row := make([]string, 0, len(forms)+1)
		row = append(row, "a"+rowForm.String())
		for _, colForm := range forms {
			right, err := algebra.NewAlpha(algebra.SignPos, colForm)
			if err != nil {
				return err
			}
			row = append(row, algebra.FullProduct(left, right).String())
		}
		data = append(data, row)
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
