package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeos/internal/state"
)

func openTestSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteBackend_MissingKey(t *testing.T) {
	s := openTestSQLite(t)

	_, ok, err := s.Get(StateKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteBackend_SetGetOverwrite(t *testing.T) {
	s := openTestSQLite(t)

	require.NoError(t, s.Set("k", []byte(`{"a":1}`)))
	raw, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(raw))

	require.NoError(t, s.Set("k", []byte(`{"a":2}`)))
	raw, _, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(raw))
}

func TestSQLiteBackend_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}

func TestGateway_SQLitePriorityRoundTrip(t *testing.T) {
	priority := openTestSQLite(t)
	secondary, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	gw := NewGateway(priority, secondary)

	want := sampleState()
	require.True(t, gw.SaveAppState(want))
	assert.Equal(t, want, gw.LoadAppState(state.Default(time.Now())))
}
