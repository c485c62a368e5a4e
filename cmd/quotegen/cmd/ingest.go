package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.csv> [file.csv...]",
	Short: "Ingest master rate-card CSVs into the catalog",
	Long:  "Parses one or more rate-card CSVs, classifies columns by header aliases, selects prices via the waterfall rule, and folds deduplicated entries into the persisted catalog.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Ingest(args)
	if err != nil {
		return err
	}
	fmt.Print(formatIngestResult(res))
	fmt.Printf("catalog now holds %d SKUs\n", a.CatalogSize())
	return nil
}
