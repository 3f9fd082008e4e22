package kv

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns one fresh store per driver.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := OpenSQLite(filepath.Join(dir, "widgets.db"))
	require.NoError(t, err)

	return map[string]Store{
		DriverMemory: NewMemory(),
		DriverFile:   NewFile(filepath.Join(dir, "widgets.json")),
		DriverSQLite: sqlite,
	}
}

func TestStore_GetSet(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close() //nolint:errcheck

			_, ok, err := s.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("todos", `[{"id":"1"}]`))
			val, ok, err := s.Get("todos")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"1"}]`, val)

			// Overwrite
			require.NoError(t, s.Set("todos", "[]"))
			val, _, err = s.Get("todos")
			require.NoError(t, err)
			assert.Equal(t, "[]", val)

			// Keys are independent
			require.NoError(t, s.Set("theme", "light"))
			val, _, err = s.Get("todos")
			require.NoError(t, err)
			assert.Equal(t, "[]", val)
		})
	}
}

func TestStore_Closed(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Close())

			err := s.Set("k", "v")
			assert.ErrorIs(t, err, ErrClosed)

			_, _, err = s.Get("k")
			assert.ErrorIs(t, err, ErrClosed)

			assert.NoError(t, s.Close(), "second close")
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open("FILE", filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open(DriverSQLite, filepath.Join(dir, "a.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", "")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "widgets.json")

	first := NewFile(path)
	require.NoError(t, first.Set("todos", "[]"))
	require.NoError(t, first.Set("theme", "dark"))

	second := NewFile(path)
	val, ok, err := second.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", val)

	// No temp file left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f := NewFile(path)
	_, _, err := f.Get("todos")
	assert.Error(t, err)

	// A write replaces the unreadable file.
	require.NoError(t, f.Set("todos", "[]"))
	val, ok, err := f.Get("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", val)
}

func TestFile_WrongShapeIsReplaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.json")
	require.NoError(t, os.WriteFile(path, []byte(`["a list"]`), 0o644))

	f := NewFile(path)
	require.NoError(t, f.Set("theme", "dark"))
	val, _, err := f.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", val)
}

func TestFile_ReadFailureKeepsData(t *testing.T) {
	// A directory at the file path cannot be read as a file.
	path := filepath.Join(t.TempDir(), "widgets.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	f := NewFile(path)
	err := f.Set("todos", "[]")
	require.Error(t, err)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir(), "path is left untouched")

	// Nothing was written
	_, statErr = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestFile_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.json")
	f := NewFile(path)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := f.Watch(ctx)
	require.NoError(t, err)

	// Another process writes the file.
	other := NewFile(path)
	require.NoError(t, other.Set("todos", `[]`))

	select {
	case _, ok := <-events:
		assert.True(t, ok)
	case <-ctx.Done():
		t.Fatal("timeout waiting for change notification")
	}
}

func TestFile_WatchIgnoresOwnWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.json")
	f := NewFile(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := f.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, f.Set("todos", `[]`))

	select {
	case <-events:
		t.Fatal("own write should not be reported")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = m.Set(string(rune('a'+n%26)), "v")
		}(i)
		go func(n int) {
			defer wg.Done()
			_, _, _ = m.Get(string(rune('a' + n%26)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 26, m.Len())
}
