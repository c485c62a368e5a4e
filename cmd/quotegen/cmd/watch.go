package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	fsw "github.com/vivekgondil/QuoteGenerator/internal/adapters/fsnotify"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Auto-ingest rate cards dropped into a directory",
	Long:  "Watches a directory and ingests every new or rewritten .csv file into the catalog. Runs until interrupted. Holds the database lock while running.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	watcher, err := fsw.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	err = watcher.Watch(args[0], func(path string) {
		res, err := a.Ingest([]string{path})
		if err != nil {
			fmt.Printf("%s✗%s %s: %v\n", colorRed, colorReset, path, err)
			return
		}
		fmt.Printf("%s✓%s %s: ", colorGreen, colorReset, path)
		fmt.Print(formatIngestResult(res))
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", args[0], err)
	}

	fmt.Printf("%s⚡ watching %s for rate cards%s (ctrl-c to stop)\n", colorBold, args[0], colorReset)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nstopped")
	return nil
}
