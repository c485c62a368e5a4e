// quotegen builds vendor quotes from rate-card CSVs.
// Single binary, zero config — everything persists in a local embedded store.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/vivekgondil/QuoteGenerator/cmd/quotegen/cmd"
)

func main() {
	// Optional .env for QUOTEGEN_DATA_DIR and friends.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
