package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAllWritesEveryTarget(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(zerolog.Nop(), false)

	targets := []Target{
		{Name: "a", Path: filepath.Join(dir, "a.css"), Data: []byte("a")},
		{Name: "b", Path: filepath.Join(dir, "b.css"), Data: []byte("b")},
	}
	require.NoError(t, w.WriteAll(targets))

	for _, tg := range targets {
		data, err := os.ReadFile(tg.Path)
		require.NoError(t, err)
		assert.Equal(t, tg.Data, data)
		_, err = os.Stat(tg.Path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temp file left behind for %s", tg.Name)
	}
}

func TestWriteAllContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(zerolog.Nop(), false)

	missing := filepath.Join(dir, "missing", "colors.css")
	good := filepath.Join(dir, "theme.json")

	err := w.WriteAll([]Target{
		{Name: "statusbar", Path: missing, Data: []byte("x")},
		{Name: "theme", Path: good, Data: []byte("{}")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteFailure))

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, missing, werr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	data, readErr := os.ReadFile(good)
	require.NoError(t, readErr)
	assert.Equal(t, "{}", string(data))
}

func TestWriteAllReportsEachFailure(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(zerolog.Nop(), false)

	err := w.WriteAll([]Target{
		{Name: "one", Path: filepath.Join(dir, "x", "one.css")},
		{Name: "two", Path: filepath.Join(dir, "y", "two.css")},
	})
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), 2)
}

func TestWriteMakeDirs(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(zerolog.Nop(), true)

	path := filepath.Join(dir, "vesktop", "themes", "colors.css")
	require.NoError(t, w.Write(Target{Name: "css", Path: path, Data: []byte(":root {}")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":root {}", string(data))
}

func TestWriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.css")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	w := NewWriter(zerolog.Nop(), false)
	require.NoError(t, w.Write(Target{Name: "css", Path: path, Data: []byte("new")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestJSONTarget(t *testing.T) {
	tg, err := JSONTarget("theme", "theme.json", map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", string(tg.Data))

	_, err = JSONTarget("bad", "bad.json", make(chan int))
	assert.Error(t, err)
}
