// Package entry provides uncapped file and directory handles over a
// go-billy filesystem.
//
// An Entry pairs an absolute, OS-normalized path with metadata resolved
// once at construction. Construction performs no I/O; every
// filesystem-touching method is a single call against the backing
// billy.Filesystem with no internal locking or cancellation. Entries are
// immutable: deriving a new entry never modifies the receiver.
package entry

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/capfs/errors"
	"github.com/jmgilman/capfs/pathutil"
)

// Entry is a handle to a file or directory outside any boundary.
// The zero value is not usable; construct entries with New.
type Entry struct {
	fsys billy.Filesystem
	path string // absolute, cleaned
	name string
	ext  string
	base string
}

// New creates an entry at the given path. Relative paths are made absolute
// against the working directory. Metadata (Name, Ext, Base, URI) is
// resolved immediately from the normalized path; the filesystem is not
// consulted.
func New(path string, opts ...Option) *Entry {
	o := applyOptions(opts)

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	path = filepath.Clean(path)

	name := filepath.Base(path)
	ext := filepath.Ext(name)
	return &Entry{
		fsys: o.fsys,
		path: path,
		name: name,
		ext:  ext,
		base: strings.TrimSuffix(name, ext),
	}
}

// Path returns the absolute, OS-normalized path.
func (e *Entry) Path() string { return e.path }

// Name returns the final path element, extension included.
func (e *Entry) Name() string { return e.name }

// Ext returns the extension of the final path element, including the
// leading dot, or "" when there is none.
func (e *Entry) Ext() string { return e.ext }

// Base returns the final path element with its extension removed.
func (e *Entry) Base() string { return e.base }

// URI returns the file scheme URI for the entry's path.
func (e *Entry) URI() string {
	return "file://" + filepath.ToSlash(e.path)
}

// Filesystem returns the backing billy.Filesystem.
func (e *Entry) Filesystem() billy.Filesystem { return e.fsys }

// Exists reports whether the path exists.
// A false result with a non-nil error means existence could not be
// determined, not that the path is absent.
func (e *Entry) Exists() (bool, error) {
	_, err := e.fsys.Stat(e.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, wrapIO(err, "stat", e.path)
}

// Stat returns the file metadata for the entry's path.
func (e *Entry) Stat() (os.FileInfo, error) {
	info, err := e.fsys.Stat(e.path)
	if err != nil {
		return nil, wrapIO(err, "stat", e.path)
	}
	return info, nil
}

// Size returns the length in bytes of the file at the entry's path.
func (e *Entry) Size() (int64, error) {
	info, err := e.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Modified returns the modification time of the entry's path.
func (e *Entry) Modified() (time.Time, error) {
	info, err := e.Stat()
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Read reads the file at the entry's path and returns its contents.
func (e *Entry) Read() ([]byte, error) {
	f, err := e.fsys.Open(e.path)
	if err != nil {
		return nil, wrapIO(err, "open", e.path)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, wrapIO(err, "read", e.path)
	}
	return data, nil
}

// Write writes data to the file at the entry's path, creating or
// truncating it. Write does not create missing parent directories; call
// AssureExists on the parent first.
func (e *Entry) Write(data []byte, perm os.FileMode) error {
	// Some backends create parents implicitly on OpenFile, so the
	// missing-parent contract is enforced up front.
	parent := filepath.Dir(e.path)
	if parent != e.path {
		if _, err := e.fsys.Stat(parent); err != nil {
			return wrapIO(err, "stat parent of", e.path)
		}
	}

	f, err := e.fsys.OpenFile(e.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return wrapIO(err, "open", e.path)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return wrapIO(err, "write", e.path)
	}
	return nil
}

// List reads the directory at the entry's path and returns its entries
// sorted by filename.
func (e *Entry) List() ([]os.FileInfo, error) {
	infos, err := e.fsys.ReadDir(e.path)
	if err != nil {
		return nil, wrapIO(err, "readdir", e.path)
	}
	return infos, nil
}

// AssureExists creates the directory at the entry's path, along with any
// missing parents. It does nothing when the directory already exists.
func (e *Entry) AssureExists(perm os.FileMode) error {
	if err := e.fsys.MkdirAll(e.path, perm); err != nil {
		return wrapIO(err, "mkdir", e.path)
	}
	return nil
}

// Delete removes the file or empty directory at the entry's path.
func (e *Entry) Delete() error {
	if err := e.fsys.Remove(e.path); err != nil {
		return wrapIO(err, "remove", e.path)
	}
	return nil
}

// GetDirectory derives a new directory entry by resolving path against
// this entry's path. The receiver is not modified.
func (e *Entry) GetDirectory(path string) *Entry {
	return New(pathutil.Resolve(e.path, path), WithFilesystem(e.fsys))
}

// GetFile derives a new file entry by resolving path against this entry's
// path. The receiver is not modified.
func (e *Entry) GetFile(path string) *Entry {
	return New(pathutil.Resolve(e.path, path), WithFilesystem(e.fsys))
}

// WalkUp returns a lazy sequence of this entry and its ancestors,
// terminating at the platform root (the fixed point where a path equals
// its own parent). The sequence is finite and can be ranged over more
// than once.
func (e *Entry) WalkUp() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		current := e
		for {
			if !yield(current) {
				return
			}
			parent := filepath.Dir(current.path)
			if parent == current.path {
				return
			}
			current = New(parent, WithFilesystem(e.fsys))
		}
	}
}

// wrapIO converts an OS failure into a structured toolkit error, refining
// the code when the cause identifies itself.
func wrapIO(err error, op, path string) error {
	if err == nil {
		return nil
	}
	code := errors.CodeIO
	switch {
	case os.IsNotExist(err):
		code = errors.CodeNotFound
	case os.IsExist(err):
		code = errors.CodeAlreadyExists
	}
	return errors.Wrapf(err, code, "%s %s", op, path)
}
