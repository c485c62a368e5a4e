package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vivekgondil/QuoteGenerator/internal/app"
	"github.com/vivekgondil/QuoteGenerator/internal/domain/catalog"
	"github.com/vivekgondil/QuoteGenerator/internal/domain/quote"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Build and render the active quote",
}

var (
	addFile     string
	addPick     int
	addQty      int
	addDiscount float64
)

var quoteAddCmd = &cobra.Command{
	Use:   "add <search terms...>",
	Short: "Search the catalog and add a line to the quote",
	Long:  "Runs a catalog search and snapshots the picked result (default: first hit) into the quote. Rebate-locked items always enter with a zero discount.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuoteAdd,
}

var quoteQtyCmd = &cobra.Command{
	Use:   "qty <line#> <delta>",
	Short: "Adjust a line's quantity (floored at 1)",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuoteQty,
}

var quoteDiscountCmd = &cobra.Command{
	Use:   "discount <line#> <percent>",
	Short: "Set a line's extra discount percent",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuoteDiscount,
}

var quoteRemoveCmd = &cobra.Command{
	Use:   "remove <line#>",
	Short: "Remove a line from the quote",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuoteRemove,
}

var quoteClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the quote",
	RunE:  runQuoteClear,
}

var quoteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the quote builder table",
	RunE:  runQuoteShow,
}

var generateOut string

var quoteGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the email-style summary table",
	Long:  "Renders the quote as a self-contained HTML table for pasting into email. Writes to stdout or --out.",
	RunE:  runQuoteGenerate,
}

func init() {
	quoteAddCmd.Flags().StringVar(&addFile, "file", "", "Restrict the search to one source rate card")
	quoteAddCmd.Flags().IntVar(&addPick, "pick", 1, "Which search hit to add (1-based)")
	quoteAddCmd.Flags().IntVar(&addQty, "qty", 1, "Initial quantity")
	quoteAddCmd.Flags().Float64Var(&addDiscount, "discount", 0, "Default extra discount percent")
	quoteGenerateCmd.Flags().StringVar(&generateOut, "out", "", "Write the HTML table to a file instead of stdout")

	quoteCmd.AddCommand(quoteAddCmd)
	quoteCmd.AddCommand(quoteQtyCmd)
	quoteCmd.AddCommand(quoteDiscountCmd)
	quoteCmd.AddCommand(quoteRemoveCmd)
	quoteCmd.AddCommand(quoteClearCmd)
	quoteCmd.AddCommand(quoteShowCmd)
	quoteCmd.AddCommand(quoteGenerateCmd)
}

func runQuoteAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	results := a.Search(query, addFile)
	if len(results) == 0 {
		return fmt.Errorf("%w: %q", app.ErrNoMatch, query)
	}
	if addPick < 1 || addPick > len(results) {
		return fmt.Errorf("--pick %d out of range (1-%d)", addPick, len(results))
	}

	entry := results[addPick-1]
	line, err := a.AddToQuote(entry, addDiscount)
	if err != nil {
		return err
	}
	if addQty > 1 {
		if err := a.AdjustQuantity(line.CartID, addQty-1); err != nil {
			return err
		}
	}
	fmt.Printf("%s✓ added%s %s%s\n", colorGreen, colorReset, line.DisplayName, lockTag(line.NoRebateLocked))
	return nil
}

// resolveLine maps a 1-based builder line number to its cart ID.
func resolveLine(lines []ports.QuoteLine, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(lines) {
		return "", fmt.Errorf("line number %q out of range (1-%d)", arg, len(lines))
	}
	return lines[n-1].CartID, nil
}

// parseDelta parses a quantity-delta argument. Strict: trailing garbage is an
// error, not a truncated parse.
func parseDelta(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bad delta %q", arg)
	}
	return n, nil
}

// parsePercent parses a discount-percent argument. Strict like parseDelta.
func parsePercent(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("bad percent %q", arg)
	}
	return v, nil
}

func runQuoteQty(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	refs := a.Lines()
	id, err := resolveLine(refs, args[0])
	if err != nil {
		return err
	}
	delta, err := parseDelta(args[1])
	if err != nil {
		return err
	}
	return a.AdjustQuantity(id, delta)
}

func runQuoteDiscount(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	refs := a.Lines()
	id, err := resolveLine(refs, args[0])
	if err != nil {
		return err
	}
	pct, err := parsePercent(args[1])
	if err != nil {
		return err
	}
	return a.SetDiscount(id, pct)
}

func runQuoteRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	refs := a.Lines()
	id, err := resolveLine(refs, args[0])
	if err != nil {
		return err
	}
	return a.RemoveLine(id)
}

func runQuoteClear(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return a.ClearCart()
}

func runQuoteShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lines := a.Lines()
	if len(lines) == 0 {
		fmt.Println("quote is empty — search and add items first")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tERP\tUNIT\tDISC%\tFINAL\tQTY\tTOTAL")
	for i, l := range lines {
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%s\t%g\t%s\t%d\t%s\n",
			i+1, l.DisplayName, lockTag(l.NoRebateLocked),
			catalog.FormatINR(l.ERPPrice), catalog.FormatINR(l.DiscountedPrice),
			l.ExtraDiscountPercent, catalog.FormatINR(quote.FinalUnitPrice(l)),
			l.Quantity, catalog.FormatINR(quote.LineTotal(l)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	t := a.Totals()
	fmt.Printf("\n  Subtotal:    %s\n", catalog.FormatINR(t.Subtotal))
	if t.IncludeTax {
		fmt.Printf("  Tax (%g%%):   %s\n", t.TaxRate, catalog.FormatINR(t.TaxAmount))
	}
	fmt.Printf("  %sGrand Total: %s%s\n", colorBold, catalog.FormatINR(t.GrandTotal), colorReset)
	return nil
}

func runQuoteGenerate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	html, err := a.GenerateSummary()
	if err != nil {
		return err
	}
	if generateOut != "" {
		if err := os.WriteFile(generateOut, []byte(html), 0644); err != nil {
			return err
		}
		fmt.Printf("%s✓%s summary written to %s\n", colorGreen, colorReset, generateOut)
		return nil
	}
	fmt.Print(html)
	return nil
}
