// Package cmd implements the CLI application to manage a daily cash flow ledger.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/store"
)

const (
	EnvDir      = "CASHFLOW_DIR"
	EnvCurrency = "CASHFLOW_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Path to the data directory (default: user config dir, or $"+EnvDir+")")
var currency = flag.String("currency", "", "Display currency code (default: PKR, or $"+EnvCurrency+")")

// DataDir resolves the data directory: flag, then environment, then the
// per-user config location.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		log.Println("warning, cannot resolve user config dir, using local .cashflow directory")
		return ".cashflow"
	}
	return filepath.Join(base, "cashflow")
}

// Currency resolves the display currency code: flag, then environment, then
// the default.
func Currency() string {
	if *currency != "" {
		return *currency
	}
	if c := os.Getenv(EnvCurrency); c != "" {
		return c
	}
	return "PKR"
}

// openStore is the central function to open the persistent store.
func openStore() (*store.Store, error) {
	s, err := store.Open(DataDir())
	if err != nil {
		return nil, fmt.Errorf("cannot open store in %q: %w", DataDir(), err)
	}
	return s, nil
}

// loadLedger opens the store and loads the current ledger. The caller owns
// closing the store.
func loadLedger() (*store.Store, *cashflow.Ledger, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return s, s.Load(), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
