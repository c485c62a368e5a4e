package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vivekgondil/QuoteGenerator/internal/domain/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the persisted catalog",
}

var catalogPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the first entries of the catalog",
	RunE:  runCatalogPreview,
}

var catalogFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List ingested rate-card files",
	RunE:  runCatalogFiles,
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog counts",
	RunE:  runCatalogStatus,
}

func init() {
	catalogCmd.AddCommand(catalogPreviewCmd)
	catalogCmd.AddCommand(catalogFilesCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
}

func runCatalogPreview(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	entries := a.Entries()
	if len(entries) == 0 {
		fmt.Println("catalog is empty — ingest a rate card first")
		return nil
	}

	limit := 100
	if a.Settings().CompactPreview {
		limit = 20
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tNAME\tERP\tDISC PRICE\tSTATUS")
	for _, e := range entries {
		status := "standard"
		if e.NoRebateLocked {
			status = "NO REBATE"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.SourceFile, e.DisplayName,
			catalog.FormatINR(e.ERPPrice), catalog.FormatINR(e.DiscountedPrice), status)
	}
	return w.Flush()
}

func runCatalogFiles(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	files := a.SourceFiles()
	if len(files) == 0 {
		fmt.Println("no rate cards ingested yet")
		return nil
	}
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}
	return nil
}

func runCatalogStatus(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Printf("%s⚡ catalog status%s\n", colorBold, colorReset)
	fmt.Printf("  SKUs:        %d\n", a.CatalogSize())
	fmt.Printf("  Locked:      %d\n", a.LockedCount())
	fmt.Printf("  Rate cards:  %d\n", len(a.SourceFiles()))
	fmt.Printf("  Quote lines: %d\n", len(a.Lines()))
	return nil
}
