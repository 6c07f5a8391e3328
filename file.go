package capfs

import (
	"os"
	"path"

	"github.com/jmgilman/capfs/entry"
)

// File is the file-level counterpart of Dir: a virtual path masking a real
// location, always owned by exactly one capped directory. Files cannot be
// constructed directly; they are derived through Dir.GetFile or listings.
type File struct {
	parent  *Dir
	virtual string
	real    string
}

// Path returns the virtual, cap-relative path of the file.
func (f *File) Path() string { return f.virtual }

// Name returns the final element of the virtual path.
func (f *File) Name() string { return path.Base(f.virtual) }

// Parent returns the capped directory that owns this file.
func (f *File) Parent() *Dir { return f.parent }

// Cap returns the root of the owning directory's virtual tree.
func (f *File) Cap() *Dir { return f.parent.Cap() }

// ToReal converts the file to a plain, uncapped entry at its real path.
func (f *File) ToReal() *entry.Entry {
	return entry.New(f.real, entry.WithFilesystem(f.parent.fsys))
}

// Exists reports whether the file's real path exists.
func (f *File) Exists() (bool, error) {
	return f.ToReal().Exists()
}

// Read reads the file's contents through its real entry.
func (f *File) Read() ([]byte, error) {
	return f.ToReal().Read()
}

// Write writes data to the file through its real entry. Missing parent
// directories are not created; call AssureExists on the parent first.
func (f *File) Write(data []byte, perm os.FileMode) error {
	return f.ToReal().Write(data, perm)
}

// Delete removes the file.
func (f *File) Delete() error {
	return f.ToReal().Delete()
}
