package tracker

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "wisp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func upsertAndWait(t *testing.T, s *Store, id int64, state State) {
	t.Helper()
	done := make(chan struct{})
	s.Upsert(id, state, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("upsert completion callback never fired")
	}
}

func TestGet_UnknownIDIsUnset(t *testing.T) {
	s, err := NewStore(openTestDB(t))
	require.NoError(t, err)

	assert.Equal(t, StateUnset, s.Get(42))
	assert.False(t, s.IsBlocked(42))
}

func TestUpsert_PersistsAndUpdatesCache(t *testing.T) {
	s, err := NewStore(openTestDB(t))
	require.NoError(t, err)

	upsertAndWait(t, s, 1, StateBlocked)

	assert.Equal(t, StateBlocked, s.Get(1))
	assert.True(t, s.IsBlocked(1))
	assert.Equal(t, []int64{1}, s.Blocked())

	upsertAndWait(t, s, 1, StateUnset)
	assert.Equal(t, StateUnset, s.Get(1))
	assert.False(t, s.IsBlocked(1))
	assert.Empty(t, s.Blocked())
}

func TestNewStore_LoadsBlockedSetFromDisk(t *testing.T) {
	db := openTestDB(t)
	s, err := NewStore(db)
	require.NoError(t, err)
	upsertAndWait(t, s, 2, StateBlocked)
	upsertAndWait(t, s, 5, StateBlocked)
	upsertAndWait(t, s, 3, StateUnset)

	// A fresh store over the same database sees the persisted set.
	reopened, err := NewStore(db)
	require.NoError(t, err)

	assert.True(t, reopened.IsBlocked(2))
	assert.True(t, reopened.IsBlocked(5))
	assert.False(t, reopened.IsBlocked(3))
	assert.Len(t, reopened.Blocked(), 2)
}

func TestUpsert_WriteFailureLeavesCacheUntouched(t *testing.T) {
	db := openTestDB(t)
	s, err := NewStore(db)
	require.NoError(t, err)
	upsertAndWait(t, s, 1, StateBlocked)

	// Closing the handle makes every subsequent write fail.
	require.NoError(t, db.Close())

	upsertAndWait(t, s, 1, StateUnset)
	upsertAndWait(t, s, 9, StateBlocked)

	assert.True(t, s.IsBlocked(1), "failed write must not evict the cached state")
	assert.False(t, s.IsBlocked(9), "failed write must not populate the cache")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "blocked", StateBlocked.String())
	assert.Equal(t, "unset", StateUnset.String())
}
