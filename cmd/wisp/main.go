package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	_ "github.com/mattn/go-sqlite3"
	"wisp/internal/config"
	"wisp/internal/logger"
	"wisp/internal/tracker"
	"wisp/internal/tui"
)

func main() {
	// Initialize logger
	if err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()
	logger.Debug("Starting wisp...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	args := os.Args[1:]

	if len(args) > 0 && args[0] == "trackers" {
		// Non-interactive mode: wisp trackers
		if err := printTrackers(db); err != nil {
			log.Fatalf("Failed to list trackers: %v", err)
		}
		return
	}

	// Interactive TUI mode: wisp
	if err := tui.Run(cfg, db); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// printTrackers dumps the persisted tracker block-state table.
func printTrackers(db *sql.DB) error {
	store, err := tracker.NewStore(db)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tSTATE")
	for _, cat := range tracker.Categories {
		fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, cat.Name, store.Get(cat.ID))
	}
	return w.Flush()
}
