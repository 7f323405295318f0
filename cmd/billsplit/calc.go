package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bauermateus/Bill-Splitter-App/internal/calculator"
	"github.com/bauermateus/Bill-Splitter-App/internal/format"
)

func newCalcCmd() *cobra.Command {
	var (
		bill  float64
		split int
		tip   int
	)
	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Compute the tip and the amount each person pays",
		Example: "  billsplit calc --bill 100 --split 4 --tip 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if split < 1 {
				return fmt.Errorf("--split must be at least 1, got %d", split)
			}
			if tip < 0 {
				return fmt.Errorf("--tip must not be negative, got %d", tip)
			}

			tipAmount := calculator.ComputeTip(bill, tip)
			total := calculator.ComputeTotalPerPerson(bill, split, tip)
			if !calculator.Finite(bill, tipAmount, total) {
				return fmt.Errorf("--bill %g at --tip %d overflows", bill, tip)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Tip:              %s (%s)\n", format.Currency(tipAmount), format.Percent(tip))
			fmt.Fprintf(w, "Total per person: %s\n", format.Currency(total))
			return nil
		},
	}
	cmd.Flags().Float64Var(&bill, "bill", 0, "bill total before tip")
	cmd.Flags().IntVar(&split, "split", 1, "number of people sharing the bill")
	cmd.Flags().IntVar(&tip, "tip", 0, "tip percentage")
	cmd.MarkFlagRequired("bill")
	return cmd
}
