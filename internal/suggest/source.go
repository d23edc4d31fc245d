// Package suggest produces the single completion candidate the omnibar
// overlays after the user's query. Candidates come from visit history,
// ranked by frecency, with a built-in seed list as fallback.
package suggest

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"wisp/internal/overlay"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id          TEXT PRIMARY KEY,
	url         TEXT NOT NULL UNIQUE,
	visit_count INTEGER NOT NULL DEFAULT 1,
	last_visit  INTEGER NOT NULL
);`

// DefaultSeeds are offered before the user has any history.
var DefaultSeeds = []string{
	"duckduckgo.com",
	"en.wikipedia.org",
	"github.com",
	"mozilla.org",
	"news.ycombinator.com",
}

// Source resolves a query to at most one completion candidate. Lookups are
// cached per normalized query with a TTL so swiping back and forth between
// results does not hammer the database.
type Source struct {
	db    *sql.DB
	seeds []string
	cache *ttlcache.Cache[string, string]
}

// NewSource creates the history table if needed and starts the lookup cache.
func NewSource(db *sql.DB, seeds []string, cacheTTL time.Duration) (*Source, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}
	if len(seeds) == 0 {
		seeds = DefaultSeeds
	}

	c := ttlcache.New[string, string](
		ttlcache.WithTTL[string, string](cacheTTL),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go c.Start()

	return &Source{db: db, seeds: seeds, cache: c}, nil
}

// Close stops the cache janitor.
func (s *Source) Close() {
	s.cache.Stop()
}

// SuggestionFor returns the completion candidate for query, if any. The
// candidate always strictly extends the normalized query, matching what the
// overlay controller will accept.
func (s *Source) SuggestionFor(query string) (string, bool) {
	norm := overlay.Normalize(query)
	if norm == "" {
		return "", false
	}

	if item := s.cache.Get(norm); item != nil {
		return item.Value(), item.Value() != ""
	}

	candidate := s.fromHistory(norm)
	if candidate == "" {
		candidate = s.fromSeeds(norm)
	}
	if !strictlyExtends(candidate, norm) {
		candidate = ""
	}

	s.cache.Set(norm, candidate, ttlcache.DefaultTTL)
	return candidate, candidate != ""
}

// RecordVisit upserts url into history, bumping its frecency.
func (s *Source) RecordVisit(rawURL string) error {
	url := overlay.Normalize(rawURL)
	if url == "" {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO history (id, url, visit_count, last_visit) VALUES (?, ?, 1, ?)
		 ON CONFLICT(url) DO UPDATE SET
			visit_count = visit_count + 1,
			last_visit  = excluded.last_visit`,
		newHistoryID(), url, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record visit for %q: %w", url, err)
	}
	s.cache.DeleteAll()
	return nil
}

func (s *Source) fromHistory(norm string) string {
	pattern := escapeLike(norm) + "%"
	var url string
	err := s.db.QueryRow(
		`SELECT url FROM history WHERE url LIKE ? ESCAPE '\'
		 ORDER BY visit_count DESC, last_visit DESC LIMIT 1`,
		pattern,
	).Scan(&url)
	if err != nil {
		return ""
	}
	return url
}

func (s *Source) fromSeeds(norm string) string {
	for _, seed := range s.seeds {
		if strings.HasPrefix(seed, norm) {
			return seed
		}
	}
	return ""
}

// strictlyExtends reports whether candidate starts with norm and has a
// non-empty suffix to show.
func strictlyExtends(candidate, norm string) bool {
	return candidate != "" &&
		strings.HasPrefix(candidate, norm) &&
		len([]rune(candidate)) > len([]rune(norm))
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// newHistoryID creates a unique UUIDv7-based row id.
func newHistoryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to a timestamp-based ID if UUID generation fails
		return fmt.Sprintf("visit_fallback_%d", time.Now().UnixNano())
	}
	return id.String()
}
