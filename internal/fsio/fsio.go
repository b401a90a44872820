// Package fsio is the file-access collaborator the tasks read and write
// through. It is a thin layer over afero so end-to-end tests and dry runs can
// substitute in-memory filesystems for the real one.
package fsio

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNoMatch is wrapped by FindFile when no candidate file exists.
var ErrNoMatch = errors.New("no matching file")

// IOError carries the failing operation and path alongside the cause.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Access is the file surface the tasks consume. All methods fail with an
// *IOError carrying the path.
type Access interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) (bool, error)
	MkdirAll(path string) error
	// FindFile resolves base against exts inside dir and returns the first
	// existing candidate, in ext order. Wraps ErrNoMatch when none exists.
	FindFile(dir, base string, exts []string) (string, error)
}

// Dir is an Access over an afero filesystem.
type Dir struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fs afero.Fs) *Dir { return &Dir{fs: fs} }

// NewOS accesses the real filesystem.
func NewOS() *Dir { return New(afero.NewOsFs()) }

// NewMemory returns an empty in-memory Access for tests.
func NewMemory() *Dir { return New(afero.NewMemMapFs()) }

// NewOverlay layers an in-memory write buffer over base. Writes never reach
// base but stay visible to subsequent reads, which is what a dry run needs to
// keep later tasks seeing earlier tasks' output.
func NewOverlay(base afero.Fs) *Dir {
	return New(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()))
}

func (d *Dir) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

func (d *Dir) Write(path string, data []byte) error {
	if err := d.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := afero.WriteFile(d.fs, path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (d *Dir) Exists(path string) (bool, error) {
	ok, err := afero.Exists(d.fs, path)
	if err != nil {
		return false, &IOError{Op: "stat", Path: path, Err: err}
	}
	return ok, nil
}

func (d *Dir) MkdirAll(path string) error {
	if err := d.fs.MkdirAll(path, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

func (d *Dir) FindFile(dir, base string, exts []string) (string, error) {
	for _, ext := range exts {
		candidate := filepath.Join(dir, base+ext)
		ok, err := afero.Exists(d.fs, candidate)
		if err != nil {
			return "", &IOError{Op: "find", Path: candidate, Err: err}
		}
		if ok {
			return candidate, nil
		}
	}
	return "", &IOError{Op: "find", Path: filepath.Join(dir, base), Err: fmt.Errorf("%w (tried %v)", ErrNoMatch, exts)}
}

// WriteRecord is one captured write: the content before and after.
type WriteRecord struct {
	Path string
	Old  []byte // nil when the file did not exist
	New  []byte
}

// Recorder wraps an Access and captures every write passing through it,
// without suppressing the write itself. Used by dry runs (over an overlay)
// to render diffs of what a real run would change.
type Recorder struct {
	Access
	Records []WriteRecord
}

// NewRecorder wraps inner.
func NewRecorder(inner Access) *Recorder {
	return &Recorder{Access: inner}
}

func (r *Recorder) Write(path string, data []byte) error {
	// An unreadable path is treated as a new file; the write below reports
	// any real failure.
	var old []byte
	if prev, err := r.Access.Read(path); err == nil {
		old = prev
	}
	if err := r.Access.Write(path, data); err != nil {
		return err
	}
	r.Records = append(r.Records, WriteRecord{Path: path, Old: old, New: data})
	return nil
}
