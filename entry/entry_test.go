package entry

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/capfs/errors"
)

func newMemEntry(t *testing.T, path string) (*Entry, billy.Filesystem) {
	t.Helper()
	fsys := memfs.New()
	return New(path, WithFilesystem(fsys)), fsys
}

func TestNew_Metadata(t *testing.T) {
	e := New("/a/b/c.txt")

	require.Equal(t, "/a/b/c.txt", e.Path())
	require.Equal(t, "c.txt", e.Name())
	require.Equal(t, ".txt", e.Ext())
	require.Equal(t, "c", e.Base())
	require.Equal(t, "file:///a/b/c.txt", e.URI())
}

func TestNew_NoExtension(t *testing.T) {
	e := New("/a/Makefile")

	require.Equal(t, "Makefile", e.Name())
	require.Equal(t, "", e.Ext())
	require.Equal(t, "Makefile", e.Base())
}

func TestNew_RelativePathAbsolutized(t *testing.T) {
	e := New("some/dir")
	require.True(t, e.Path() != "some/dir")
	require.Contains(t, e.Path(), "some")
}

func TestNew_CleansPath(t *testing.T) {
	e := New("/a//b/./c/../d")
	require.Equal(t, "/a/b/d", e.Path())
}

func TestExists(t *testing.T) {
	e, fsys := newMemEntry(t, "/data/file.txt")

	exists, err := e.Exists()
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, fsys.MkdirAll("/data", 0o755))
	f, err := fsys.Create("/data/file.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	exists, err = e.Exists()
	require.NoError(t, err)
	require.True(t, exists)
}

func TestWrite_RequiresParent(t *testing.T) {
	e, _ := newMemEntry(t, "/missing/file.txt")

	err := e.Write([]byte("data"), 0o644)
	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestWrite_ReadRoundTrip(t *testing.T) {
	e, _ := newMemEntry(t, "/data/file.txt")

	require.NoError(t, e.GetDirectory("..").AssureExists(0o755))
	require.NoError(t, e.Write([]byte("hello"), 0o644))

	data, err := e.Read()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)

	size, err := e.Size()
	require.NoError(t, err)
	require.Equal(t, int64(5), size)
}

func TestRead_Missing(t *testing.T) {
	e, _ := newMemEntry(t, "/nope.txt")

	_, err := e.Read()
	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestModified(t *testing.T) {
	e, _ := newMemEntry(t, "/data/file.txt")

	require.NoError(t, e.GetDirectory("..").AssureExists(0o755))
	require.NoError(t, e.Write([]byte("x"), 0o644))

	modified, err := e.Modified()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), modified, time.Minute)
}

func TestList(t *testing.T) {
	e, fsys := newMemEntry(t, "/data")

	require.NoError(t, e.AssureExists(0o755))
	for _, name := range []string{"/data/a.txt", "/data/b.txt"} {
		f, err := fsys.Create(name)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	infos, err := e.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)
}

func TestDelete(t *testing.T) {
	e, _ := newMemEntry(t, "/data/file.txt")

	require.NoError(t, e.GetDirectory("..").AssureExists(0o755))
	require.NoError(t, e.Write([]byte("x"), 0o644))
	require.NoError(t, e.Delete())

	exists, err := e.Exists()
	require.NoError(t, err)
	require.False(t, exists)
}

func TestGetDirectory_Derivation(t *testing.T) {
	e := New("/projects/toolkit")

	// Forward references merge overlapping segments.
	require.Equal(t, "/projects/toolkit/src", e.GetDirectory("toolkit/src").Path())

	// Relative navigation resolves normally.
	require.Equal(t, "/projects", e.GetDirectory("..").Path())
	require.Equal(t, "/projects/other", e.GetDirectory("../other").Path())

	// Absolute paths replace entirely.
	require.Equal(t, "/elsewhere", e.GetDirectory("/elsewhere").Path())

	// The receiver is untouched.
	require.Equal(t, "/projects/toolkit", e.Path())
}

func TestGetFile_Derivation(t *testing.T) {
	e := New("/projects/toolkit")

	f := e.GetFile("src/main.go")
	require.Equal(t, "/projects/toolkit/src/main.go", f.Path())
	require.Equal(t, "main.go", f.Name())
	require.Equal(t, ".go", f.Ext())
}

func TestWalkUp(t *testing.T) {
	e := New("/a/b/c")

	var paths []string
	for ancestor := range e.WalkUp() {
		paths = append(paths, ancestor.Path())
	}
	require.Equal(t, []string{"/a/b/c", "/a/b", "/a", "/"}, paths)

	// The sequence is restartable.
	var again []string
	for ancestor := range e.WalkUp() {
		again = append(again, ancestor.Path())
	}
	require.Equal(t, paths, again)
}

func TestWalkUp_EarlyStop(t *testing.T) {
	e := New("/a/b/c")

	var count int
	for range e.WalkUp() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}
