package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var norebateCmd = &cobra.Command{
	Use:   "norebate <file.csv>",
	Short: "Cross-reference a no-rebate list against the catalog",
	Long:  "Reads identifier columns from a no-rebate CSV and locks every matching catalog entry against further discounts. Requires a non-empty catalog.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoRebate,
}

func runNoRebate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.CrossReference(args[0])
	if err != nil {
		return err
	}
	fmt.Print(formatCrossRefResult(res))
	fmt.Printf("%d of %d catalog entries are rebate-locked\n", a.LockedCount(), a.CatalogSize())
	return nil
}
