// 11 Oct 2026

// Package harness is for tests which run a whole alignment pipeline.
// A Fixture owns a temporary directory and a job name for one test.
// A Runner starts the pipeline and checks what it returns.
package harness

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/andrew-torda/alncheck/pkg/seq"
)

// DefaultJobPrefix starts every job name, unless the caller gives another.
const DefaultJobPrefix = "alnjob"

// Fixture is the state for one test. Make it with NewFixture and Close
// it when finished.
type Fixture struct {
	Dir     string // top level temporary directory
	JobName string // prefix plus eight random characters
	Keep    bool   // do not remove Dir on Close
	dirs    []string
	files   []string
}

// randomID returns n characters from a fresh uuid, without dashes.
func randomID(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s[:n]
}

// NewFixture makes a temporary directory under parent ("" for the
// system default) whose name starts with prefix.
func NewFixture(parent, prefix string) (*Fixture, error) {
	if parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, err
		}
	}
	dir, err := os.MkdirTemp(parent, prefix)
	if err != nil {
		return nil, err
	}
	return &Fixture{Dir: dir, JobName: DefaultJobPrefix + randomID(8)}, nil
}

// NewTestFixture is NewFixture which stops the test on error and closes
// itself when the test ends.
func NewTestFixture(t testing.TB, parent, prefix string) *Fixture {
	t.Helper()
	f, err := NewFixture(parent, prefix)
	if err != nil {
		t.Fatal("making fixture:", err)
	}
	t.Cleanup(func() {
		if err := f.Close(); err != nil {
			t.Error("closing fixture:", err)
		}
	})
	return f
}

// Path joins elements onto the fixture's directory.
func (f *Fixture) Path(elem ...string) string {
	return filepath.Join(append([]string{f.Dir}, elem...)...)
}

// JobPath is a path in the fixture directory starting with the job name,
// like the files a pipeline writes for a job.
func (f *Fixture) JobPath(suffix string) string {
	return f.Path(f.JobName + suffix)
}

// WriteSet writes s as fasta to name inside the fixture and returns
// the path.
func (f *Fixture) WriteSet(name string, s seq.Set) (string, error) {
	p := f.Path(name)
	if err := seq.WriteFile(p, s, nil); err != nil {
		return "", err
	}
	f.files = append(f.files, p)
	return p, nil
}

// Register notes a directory which was made for this job.
func (f *Fixture) Register(dir string) { f.dirs = append(f.dirs, dir) }

// RegisterFiles walks the fixture directory and notes the job's own
// directory and every file or directory whose name starts with the
// job name.
func (f *Fixture) RegisterFiles() error {
	f.Register(f.JobPath(""))
	return filepath.WalkDir(f.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if p == f.Dir || !strings.HasPrefix(d.Name(), f.JobName) {
			return nil
		}
		if d.IsDir() {
			if p != f.JobPath("") {
				f.Register(p)
			}
		} else {
			f.files = append(f.files, p)
		}
		return nil
	})
}

// Files returns the generated files noted so far.
func (f *Fixture) Files() []string { return f.files }

// Dirs returns the directories noted so far.
func (f *Fixture) Dirs() []string { return f.dirs }

// Close registers the job's files and removes the directory, unless
// Keep is set.
func (f *Fixture) Close() error {
	if err := f.RegisterFiles(); err != nil {
		return err
	}
	if f.Keep {
		return nil
	}
	return os.RemoveAll(f.Dir)
}
