package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vivekgondil/QuoteGenerator/internal/app"
)

var compactFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the data directory, database path, and persisted display settings. --compact toggles the short catalog preview.",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&compactFlag, "compact", false, "Use the compact catalog preview")
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if cmd.Flags().Changed("compact") {
		if err := a.SetCompactPreview(compactFlag); err != nil {
			return err
		}
	}

	s := a.Settings()
	fmt.Printf("%s⚡ quotegen config%s\n", colorBold, colorReset)
	fmt.Printf("  Root:     %s\n", root)
	fmt.Printf("  Data dir: %s\n", app.DataDir(root))
	fmt.Printf("  SKUs:     %d (%d locked)\n", a.CatalogSize(), a.LockedCount())
	fmt.Printf("  Tax:      %g%% (include=%t)\n", s.TaxRate, s.IncludeTax)
	fmt.Printf("  Compact:  %t\n", s.CompactPreview)
	return nil
}
