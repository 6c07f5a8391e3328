package capfs

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/capfs/entry"
	"github.com/jmgilman/capfs/errors"
)

// Boundary is the surface shared by every capped node: a virtual path, an
// O(1) lookup of the owning cap, and the explicit escape hatch to the real
// filesystem.
type Boundary interface {
	// Path returns the node's virtual, cap-relative path.
	Path() string

	// Cap returns the root of the node's virtual tree.
	Cap() *Dir

	// ToReal converts the node to a plain, uncapped entry at its real
	// path. This is the sole sanctioned way out of the sandbox.
	ToReal() *entry.Entry
}

// Dir is a capped directory handle. It pairs a virtual path, expressed
// relative to its cap, with the real path that virtual location denotes.
// Every operation that produces another node keeps the pair derived from
// the same segment list, so the two can never diverge.
//
// Dirs are immutable; methods that appear to navigate return fresh values.
type Dir struct {
	fsys    billy.Filesystem
	origin  origin
	virtual string // "/"-rooted, forward slashes
	real    string // absolute, OS-normalized
}

// origin is the root/child variant of a Dir. Exactly two implementations
// exist; code switching on it handles both.
type origin interface {
	isOrigin()
}

// rootOrigin marks a Dir that is its own cap.
type rootOrigin struct{}

func (rootOrigin) isOrigin() {}

// childOrigin carries the references fixed at construction: the cap the
// child belongs to and the node it was derived from. Both point strictly
// upward, so no cycles exist.
type childOrigin struct {
	cap    *Dir
	parent *Dir
}

func (childOrigin) isOrigin() {}

// NewRoot creates a boundary root at the given path. The path becomes both
// the real anchor and the virtual "/". Relative paths are made absolute
// against the working directory. Construction performs no filesystem I/O.
func NewRoot(path string, opts ...Option) (*Dir, error) {
	if path == "" {
		return nil, errors.New(errors.CodeInvalidName, "root path must not be empty")
	}

	cfg := applyConfig(opts)

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeIO, "resolve root path %q", path)
		}
		path = abs
	}

	return &Dir{
		fsys:    cfg.fsys,
		origin:  rootOrigin{},
		virtual: "/",
		real:    filepath.Clean(path),
	}, nil
}

// FromCwd creates a boundary root anchored at the current working
// directory.
func FromCwd(opts ...Option) (*Dir, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeIO, "determine working directory")
	}
	return NewRoot(cwd, opts...)
}

// Path returns the virtual, cap-relative path: "/" for the cap itself.
func (d *Dir) Path() string { return d.virtual }

// Cap returns the root of this node's virtual tree. For a root, Cap
// returns the receiver; for a child, the reference captured at
// construction. The lookup is O(1) and never walks ancestors.
func (d *Dir) Cap() *Dir {
	if o, ok := d.origin.(childOrigin); ok {
		return o.cap
	}
	return d
}

// Parent returns the node this directory was derived from, and false at
// the cap, where the parent chain terminates.
func (d *Dir) Parent() (*Dir, bool) {
	if o, ok := d.origin.(childOrigin); ok {
		return o.parent, true
	}
	return nil, false
}

// IsRoot reports whether this directory is its own cap.
func (d *Dir) IsRoot() bool {
	_, ok := d.origin.(rootOrigin)
	return ok
}

// ToReal converts the directory to a plain, uncapped entry at its real
// path. Nothing else produces an uncapped view of a capped node.
func (d *Dir) ToReal() *entry.Entry {
	return entry.New(d.real, entry.WithFilesystem(d.fsys))
}

// Exists reports whether the directory's real path exists.
func (d *Dir) Exists() (bool, error) {
	return d.ToReal().Exists()
}

// AssureExists creates the directory at the real path, along with any
// missing parents inside the boundary.
func (d *Dir) AssureExists(perm os.FileMode) error {
	return d.ToReal().AssureExists(perm)
}

// Delete removes the directory. It is non-recursive: a directory that
// still has children fails with CodeNotEmpty.
func (d *Dir) Delete() error {
	infos, err := d.ToReal().List()
	if err != nil {
		return err
	}
	if len(infos) > 0 {
		return errors.Newf(errors.CodeNotEmpty, "directory %s is not empty", d.virtual)
	}
	return d.ToReal().Delete()
}

// Compile-time interface checks.
var (
	_ Boundary = (*Dir)(nil)
	_ Boundary = (*File)(nil)
	_ Boundary = (*TempDir)(nil)
)
