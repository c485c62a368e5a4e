package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vivekgondil/QuoteGenerator/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "quotegen",
	Short: "quotegen — rate-card catalog and quote builder",
	Long:  "Ingests vendor rate-card CSVs into a local catalog, cross-references no-rebate lists, searches the catalog, and assembles quotes with per-line discounts and tax.",
}

// projectRoot returns the working directory the catalog belongs to.
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// openApp opens the application against the working directory's database.
// Callers must Close it.
func openApp() (*app.App, error) {
	dbPath, err := app.DBPath(projectRoot())
	if err != nil {
		return nil, err
	}
	a, err := app.New(app.Config{DBPath: dbPath})
	if err != nil {
		if isDBLockError(err) {
			return nil, fmt.Errorf("%s", diagnoseDBLock())
		}
		return nil, err
	}
	return a, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(norebateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(taxCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(wipeCmd)
}
