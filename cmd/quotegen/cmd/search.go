package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchFile string

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search the catalog",
	Long:  "Token-AND substring search over each entry's normalized search blob. All terms must match. Results keep catalog order, capped at 100.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchFile, "file", "", "Restrict search to one source rate card")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	results := a.Search(strings.Join(args, " "), searchFile)
	fmt.Print(formatSearchResults(results))
	return nil
}
