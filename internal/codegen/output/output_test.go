package output

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSetStaging(t *testing.T) {
	s := NewFileSet()
	fmt.Fprint(s.Create("b/two.rs"), "two")
	s.Put("a.rs", []byte("one"))
	s.Put("./b/../c.rs", []byte("three"))

	assert.Equal(t, []string{"a.rs", "b/two.rs", "c.rs"}, s.Paths())
	assert.Equal(t, 3, s.Len())

	got, ok := s.Bytes("b/two.rs")
	require.True(t, ok)
	assert.Equal(t, "two", string(got))

	_, ok = s.Bytes("missing.rs")
	assert.False(t, ok)
}

func TestFileSetCreateTruncates(t *testing.T) {
	s := NewFileSet()
	s.Put("lib.rs", []byte("first"))
	s.Put("lib.rs", []byte("second"))

	got, _ := s.Bytes("lib.rs")
	assert.Equal(t, "second", string(got))
	assert.Equal(t, 1, s.Len())
}

func TestFileSetMerge(t *testing.T) {
	inner := NewFileSet()
	inner.Put("lib.rs", []byte("x"))
	inner.Put("generated/mod.rs", []byte("y"))

	s := NewFileSet()
	s.Merge("rust", inner)

	assert.Equal(t, []string{"rust/generated/mod.rs", "rust/lib.rs"}, s.Paths())
}

func TestCommitWritesFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileSet()
	s.Put("lib.rs", []byte("pub mod generated;\n"))
	s.Put("generated/structs/iso_request.rs", []byte("pub struct IsoRequest {}\n"))

	require.NoError(t, s.Commit(dir, slog.New(slog.DiscardHandler)))

	got, err := os.ReadFile(filepath.Join(dir, "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub mod generated;\n", string(got))

	got, err = os.ReadFile(filepath.Join(dir, "generated", "structs", "iso_request.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub struct IsoRequest {}\n", string(got))

	entries, err := os.ReadDir(filepath.Join(dir, "generated", "structs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not remain")
}

func TestCommitOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(target, []byte("old content that is longer"), 0o644))

	s := NewFileSet()
	s.Put("lib.rs", []byte("new"))
	require.NoError(t, s.Commit(dir, slog.New(slog.DiscardHandler)))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCommitReportsWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "generated")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	s := NewFileSet()
	s.Put("generated/mod.rs", []byte("pub mod enums;\n"))

	err := s.Commit(dir, slog.New(slog.DiscardHandler))
	require.Error(t, err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "mkdir", werr.Op)
	assert.Equal(t, blocker, werr.Path)
}
