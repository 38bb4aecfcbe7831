package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func TestDocumentLoadMissingFile(t *testing.T) {
	doc := NewDocument[[]int](tempPath(t, "missing.json"))

	got := doc.Load([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, got, "missing file degrades to the default")
}

func TestDocumentLoadCorruptFile(t *testing.T) {
	path := tempPath(t, "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	doc := NewDocument[map[string]int](path)
	got := doc.Load(map[string]int{})
	assert.Empty(t, got, "corrupt file degrades to the default")
}

func TestDocumentSaveLoadRoundTrip(t *testing.T) {
	path := tempPath(t, "doc.json")
	doc := NewDocument[map[string]int](path)

	require.NoError(t, doc.Save(map[string]int{"a": 1, "b": 2}))

	got := doc.Load(nil)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}

func TestDocumentMutate(t *testing.T) {
	path := tempPath(t, "doc.json")
	doc := NewDocument[[]string](path)
	require.NoError(t, doc.Save([]string{"x"}))

	err := doc.Mutate(nil, func(items []string) ([]string, error) {
		return append(items, "y"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, doc.Load(nil))
}

func TestDocumentMutateErrorWritesNothing(t *testing.T) {
	path := tempPath(t, "doc.json")
	doc := NewDocument[[]string](path)
	require.NoError(t, doc.Save([]string{"x"}))

	boom := errors.New("boom")
	err := doc.Mutate(nil, func(items []string) ([]string, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"x"}, doc.Load(nil), "failed mutation leaves the file untouched")
}

func TestDocumentSaveOverwritesWholeFile(t *testing.T) {
	path := tempPath(t, "doc.json")
	doc := NewDocument[[]int](path)

	require.NoError(t, doc.Save([]int{1, 2, 3}))
	require.NoError(t, doc.Save([]int{9}))

	assert.Equal(t, []int{9}, doc.Load(nil))
}
