package capfs

import (
	"path/filepath"
	"strings"

	"github.com/jmgilman/capfs/errors"
	"github.com/jmgilman/capfs/pathutil"
)

// coerce turns a path fragment into the cap-relative segment list of the
// node it denotes, starting from the receiver.
//
// Absolute fragments are reinterpreted: the root marker (leading slash or
// volume name) is stripped and the remainder restarts at the cap, never at
// the real filesystem root. Each ".." pops the last accumulated segment
// and is a no-op once the cap is reached: traversal beyond the boundary is
// clamped, not rejected.
func (d *Dir) coerce(fragment string) []string {
	f := strings.ReplaceAll(fragment, "\\", "/")

	var segments []string
	if vol := filepath.VolumeName(f); vol != "" {
		f = f[len(vol):]
	}
	if strings.HasPrefix(f, "/") {
		// Cap-relative reinterpretation: segments restart at the cap.
		f = strings.TrimPrefix(f, "/")
	} else {
		segments = append(segments, d.capSegments()...)
	}

	for _, s := range strings.Split(f, "/") {
		switch s {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, s)
		}
	}
	return segments
}

// capSegments returns the receiver's Trail: its virtual path as segments
// relative to the cap.
func (d *Dir) capSegments() []string {
	return pathutil.Split(d.virtual)
}

// child materializes the node the segment list denotes. The virtual path
// and the real path are rejoined from the same list, against the cap's
// virtual root and the cap's real path respectively, so the two cannot
// diverge.
func (d *Dir) child(segments []string) *Dir {
	root := d.Cap()

	virtual := "/" + strings.Join(segments, "/")
	real := root.real
	if len(segments) > 0 {
		real = filepath.Join(root.real, filepath.FromSlash(strings.Join(segments, "/")))
	}

	return &Dir{
		fsys:    d.fsys,
		origin:  childOrigin{cap: root, parent: d},
		virtual: virtual,
		real:    real,
	}
}

// GetDirectory derives the capped directory the fragment denotes. The
// fragment may navigate with "." and "..", and absolute fragments are
// reinterpreted relative to the cap. Only an empty fragment is an error;
// traversal beyond the boundary is clamped.
func (d *Dir) GetDirectory(path string) (*Dir, error) {
	if path == "" {
		return nil, errors.New(errors.CodeInvalidName, "directory path must not be empty")
	}
	return d.child(d.coerce(path)), nil
}

// GetFile derives the capped file the fragment denotes, owned by this
// directory. The coercion rules match GetDirectory, with one extra
// precondition: the fragment must leave at least one segment, since the
// cap itself cannot be a file.
func (d *Dir) GetFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New(errors.CodeInvalidName, "file path must not be empty")
	}

	segments := d.coerce(path)
	if len(segments) == 0 {
		return nil, errors.Newf(errors.CodeInvalidName, "file path %q resolves to the boundary root", path)
	}

	node := d.child(segments)
	return &File{
		parent:  d,
		virtual: node.virtual,
		real:    node.real,
	}, nil
}
