package capfs

import (
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"

	"github.com/jmgilman/capfs/errors"
	"github.com/jmgilman/capfs/pathutil"
)

// tempSuffixLen is the length of the random suffix appended to temp root
// names. Concurrent roots sharing a base name never collide.
const tempSuffixLen = 12

const tempDirPerm = os.FileMode(0o700)

// TempDir is a boundary rooted under the OS temp directory. Creation is
// synchronous and makes the directory on disk, the one documented side
// effect inside otherwise I/O-free construction. Only the temp family
// supports recursive Remove, and lineage validation at construction exists
// solely to keep Remove bounded to the temp tree.
//
// There is no working-directory constructor for this family: temp-root and
// cwd-root are mutually exclusive concepts.
type TempDir struct {
	*Dir
	tempRoot string
}

// NewTemp creates a temp boundary root. The name must be a bare segment;
// a fixed-length random suffix is appended, so concurrent roots sharing a
// name stay distinct. The directory is created immediately: "already
// exists" is tolerated, all other creation errors surface.
func NewTemp(name string, opts ...Option) (*TempDir, error) {
	if err := validateBareName(name); err != nil {
		return nil, err
	}

	cfg := applyConfig(opts)
	real := filepath.Join(cfg.tempRoot, name+"-"+tempSuffix())

	if err := cfg.fsys.MkdirAll(real, tempDirPerm); err != nil && !os.IsExist(err) {
		return nil, errors.Wrapf(err, errors.CodeIO, "create temp root %s", real)
	}

	return &TempDir{
		Dir: &Dir{
			fsys:    cfg.fsys,
			origin:  rootOrigin{},
			virtual: "/",
			real:    real,
		},
		tempRoot: cfg.tempRoot,
	}, nil
}

// NewTempChild creates a temp boundary directly under parent. The parent
// must itself be a temp boundary, must currently exist on disk, and its
// lineage must terminate inside the temp directory; anything else fails
// with CodeLineage before any disk mutation. The child directory is
// created synchronously, like a root.
func NewTempChild(parent Boundary, name string) (*TempDir, error) {
	if err := validateBareName(name); err != nil {
		return nil, err
	}

	tp, ok := parent.(*TempDir)
	if !ok {
		return nil, errors.Newf(errors.CodeLineage, "parent %s is not a temp boundary", parent.Path())
	}

	exists, err := tp.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Newf(errors.CodeLineage, "parent %s no longer exists", tp.real)
	}

	if root := tp.Cap(); !pathutil.Contains(tp.tempRoot, root.real) {
		return nil, errors.Newf(errors.CodeLineage, "lineage of %s does not terminate at %s", root.real, tp.tempRoot)
	}

	node, err := tp.GetDirectory(name)
	if err != nil {
		return nil, err
	}

	// A symlink planted at the child's name could point the real path
	// outside the temp tree before Remove runs. SecureJoin resolves the
	// name against the parent; a result that disagrees with the derived
	// real path means the location has been tampered with.
	safe, err := securejoin.SecureJoin(tp.real, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeLineage, "resolve %q under %s", name, tp.real)
	}
	if filepath.Clean(safe) != node.real {
		return nil, errors.Newf(errors.CodeLineage, "%q escapes the temp lineage of %s", name, tp.real)
	}

	if err := tp.fsys.MkdirAll(node.real, tempDirPerm); err != nil && !os.IsExist(err) {
		return nil, errors.Wrapf(err, errors.CodeIO, "create temp directory %s", node.real)
	}

	return &TempDir{Dir: node, tempRoot: tp.tempRoot}, nil
}

// Remove deletes the temp directory and everything beneath it. Removal is
// refused unless the directory's real path lies inside the temp root, so a
// recursive delete can never reach outside the temp tree. Removing a
// directory that is already gone is not an error.
func (t *TempDir) Remove() error {
	if !pathutil.Contains(t.tempRoot, t.real) {
		return errors.Newf(errors.CodeLineage, "refusing recursive removal of %s outside %s", t.real, t.tempRoot)
	}
	return removeAll(t.fsys, t.real)
}

// removeAll removes path and any children it contains. Billy has no
// RemoveAll, so removal recurses through ReadDir, returning the first
// error it encounters. A missing path removes nothing and returns nil.
func removeAll(fsys billy.Filesystem, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.CodeIO, "stat %s", path)
	}

	if info.IsDir() {
		infos, err := fsys.ReadDir(path)
		if err != nil {
			return errors.Wrapf(err, errors.CodeIO, "readdir %s", path)
		}
		for _, child := range infos {
			if err := removeAll(fsys, filepath.Join(path, child.Name())); err != nil {
				return err
			}
		}
	}

	if err := fsys.Remove(path); err != nil {
		return errors.Wrapf(err, errors.CodeIO, "remove %s", path)
	}
	return nil
}

// tempSuffix returns the fixed-length random suffix for temp root names.
func tempSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:tempSuffixLen]
}

// validateBareName rejects names that are not a single bare path segment.
func validateBareName(name string) error {
	if name == "" {
		return errors.New(errors.CodeInvalidName, "name must not be empty")
	}
	normalized := strings.ReplaceAll(name, "\\", "/")
	if strings.HasPrefix(normalized, "/") || filepath.VolumeName(name) != "" {
		return errors.Newf(errors.CodeInvalidName, "name %q must not be absolute", name)
	}
	if strings.Contains(normalized, "/") {
		return errors.Newf(errors.CodeInvalidName, "name %q must be a bare segment", name)
	}
	if name == "." || name == ".." {
		return errors.Newf(errors.CodeInvalidName, "name %q must not be a navigation segment", name)
	}
	return nil
}
