package suggest

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, seeds []string) *Source {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "wisp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewSource(db, seeds, time.Minute)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSuggestionFor_SeedMatch(t *testing.T) {
	s := newTestSource(t, []string{"google.com", "gopher.dev"})

	got, ok := s.SuggestionFor("goo")

	require.True(t, ok)
	assert.Equal(t, "google.com", got)
}

func TestSuggestionFor_NormalizesQuery(t *testing.T) {
	s := newTestSource(t, []string{"google.com"})

	got, ok := s.SuggestionFor("  GOO")

	require.True(t, ok)
	assert.Equal(t, "google.com", got)
}

func TestSuggestionFor_NoMatch(t *testing.T) {
	s := newTestSource(t, []string{"google.com"})

	_, ok := s.SuggestionFor("zzz")
	assert.False(t, ok)

	_, ok = s.SuggestionFor("   ")
	assert.False(t, ok)
}

func TestSuggestionFor_RejectsExactMatch(t *testing.T) {
	s := newTestSource(t, []string{"google.com"})

	_, ok := s.SuggestionFor("google.com")

	assert.False(t, ok, "a candidate with nothing left to complete is useless")
}

func TestSuggestionFor_HistoryBeatsSeeds(t *testing.T) {
	s := newTestSource(t, []string{"google.com"})
	require.NoError(t, s.RecordVisit("gooddeal.example"))

	got, ok := s.SuggestionFor("goo")

	require.True(t, ok)
	assert.Equal(t, "gooddeal.example", got)
}

func TestSuggestionFor_FrecencyOrdering(t *testing.T) {
	s := newTestSource(t, nil)
	require.NoError(t, s.RecordVisit("news.example"))
	require.NoError(t, s.RecordVisit("news.ycombinator.com"))
	require.NoError(t, s.RecordVisit("news.ycombinator.com"))

	got, ok := s.SuggestionFor("news")

	require.True(t, ok)
	assert.Equal(t, "news.ycombinator.com", got, "most-visited candidate wins")
}

func TestRecordVisit_IncrementsCount(t *testing.T) {
	s := newTestSource(t, nil)
	require.NoError(t, s.RecordVisit("Example.org"))
	require.NoError(t, s.RecordVisit("example.org"))

	var count int
	err := s.db.QueryRow(`SELECT visit_count FROM history WHERE url = ?`, "example.org").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "visits are keyed by normalized url")
}

func TestRecordVisit_InvalidatesCachedLookups(t *testing.T) {
	s := newTestSource(t, nil)

	_, ok := s.SuggestionFor("exa")
	require.False(t, ok)

	require.NoError(t, s.RecordVisit("example.org"))

	got, ok := s.SuggestionFor("exa")
	require.True(t, ok, "a fresh visit must be suggestible immediately")
	assert.Equal(t, "example.org", got)
}

func TestSuggestionFor_LikeWildcardsAreLiteral(t *testing.T) {
	s := newTestSource(t, nil)
	require.NoError(t, s.RecordVisit("example.org/a_b"))
	require.NoError(t, s.RecordVisit("example.org/axb"))
	// Bump the wrong candidate so it would win if "_" matched any character.
	require.NoError(t, s.RecordVisit("example.org/axb"))

	got, ok := s.SuggestionFor("example.org/a_")

	require.True(t, ok)
	assert.Equal(t, "example.org/a_b", got)
}
