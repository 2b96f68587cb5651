// Package output stages generated files in memory and writes them out only
// once a whole run has succeeded.
package output

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// WriteError reports a failure while committing a file set.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// FileSet is an ordered collection of generated files keyed by slash
// separated paths relative to the output root.
type FileSet struct {
	files map[string]*bytes.Buffer
	order []string
}

func NewFileSet() *FileSet {
	return &FileSet{files: make(map[string]*bytes.Buffer)}
}

// Create returns a writer for path. Creating the same path twice truncates
// the earlier content.
func (s *FileSet) Create(path string) io.Writer {
	path = clean(path)
	if buf, ok := s.files[path]; ok {
		buf.Reset()
		return buf
	}
	buf := &bytes.Buffer{}
	s.files[path] = buf
	s.order = append(s.order, path)
	return buf
}

// Put stores content under path.
func (s *FileSet) Put(path string, content []byte) {
	w := s.Create(path)
	_, _ = w.Write(content)
}

// Bytes returns the content staged for path.
func (s *FileSet) Bytes(path string) ([]byte, bool) {
	buf, ok := s.files[clean(path)]
	if !ok {
		return nil, false
	}
	return buf.Bytes(), true
}

// Paths returns the staged paths sorted lexically.
func (s *FileSet) Paths() []string {
	out := slices.Clone(s.order)
	slices.Sort(out)
	return out
}

// Len returns the number of staged files.
func (s *FileSet) Len() int { return len(s.files) }

// Merge copies every file of other into s below prefix.
func (s *FileSet) Merge(prefix string, other *FileSet) {
	for _, p := range other.order {
		s.Put(prefix+"/"+p, other.files[p].Bytes())
	}
}

// Commit writes every staged file below dir. Each file is written to a
// temporary sibling first and renamed into place, so a failure never leaves a
// truncated file behind.
func (s *FileSet) Commit(dir string, logger *slog.Logger) error {
	for _, p := range s.Paths() {
		target := filepath.Join(dir, filepath.FromSlash(p))
		if err := writeAtomic(target, s.files[p].Bytes()); err != nil {
			return err
		}
		logger.Debug("Wrote file", "file", target)
	}
	return nil
}

func writeAtomic(target string, content []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &WriteError{Path: filepath.Dir(target), Op: "mkdir", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return &WriteError{Path: target, Op: "create", Err: err}
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return &WriteError{Path: target, Op: "write", Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &WriteError{Path: target, Op: "close", Err: err}
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return &WriteError{Path: target, Op: "chmod", Err: err}
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return &WriteError{Path: target, Op: "rename", Err: err}
	}
	return nil
}

func clean(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
}
