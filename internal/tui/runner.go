package tui

import (
	"database/sql"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"wisp/internal/config"
	"wisp/internal/overlay"
	"wisp/internal/suggest"
	"wisp/internal/tracker"
	"wisp/internal/tui/components/omnibar"
)

// Run starts the TUI over an already-open database.
func Run(cfg *config.Config, db *sql.DB) error {
	store, err := tracker.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to open tracker store: %w", err)
	}

	source, err := suggest.NewSource(db, cfg.SeedDomains, time.Duration(cfg.SuggestTTLMinutes)*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to open suggestion source: %w", err)
	}
	defer source.Close()

	out := &sender{}
	sched := &debounceScheduler{
		delay: time.Duration(cfg.DebounceMs) * time.Millisecond,
		out:   out,
	}
	defer sched.Stop()

	ctrl := overlay.New(&appDelegate{out: out}, sched)
	m := NewModel(omnibar.New(ctrl), store, source, out)

	p := tea.NewProgram(m, tea.WithAltScreen())
	out.send = p.Send
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited: %w", err)
	}
	return nil
}
