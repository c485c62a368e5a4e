package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	taxRateFlag    float64
	taxIncludeFlag bool
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Show or change tax settings",
	Long:  "Without flags, prints the persisted tax rate and inclusion toggle. --rate and --include update them (rate clamps to 0-100).",
	RunE:  runTax,
}

func init() {
	taxCmd.Flags().Float64Var(&taxRateFlag, "rate", -1, "Tax rate percent (0-100)")
	taxCmd.Flags().BoolVar(&taxIncludeFlag, "include", true, "Include tax in quote totals")
}

func runTax(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if cmd.Flags().Changed("rate") {
		if err := a.SetTaxRate(taxRateFlag); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("include") {
		if err := a.SetIncludeTax(taxIncludeFlag); err != nil {
			return err
		}
	}

	s := a.Settings()
	state := "excluded"
	if s.IncludeTax {
		state = "included"
	}
	fmt.Printf("tax rate %g%% │ %s in totals\n", s.TaxRate, state)
	return nil
}
