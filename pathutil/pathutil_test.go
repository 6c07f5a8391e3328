package pathutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeOverlapping(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"overlap of one segment", "projects/toolkit", "toolkit/src", "projects/toolkit/src"},
		{"overlap of two segments", "a/b/c", "b/c/d", "a/b/c/d"},
		{"no overlap concatenates", "a/b", "c/d", "a/b/c/d"},
		{"full overlap", "a/b", "a/b", "a/b"},
		{"empty left returns right", "", "x/y", "x/y"},
		{"empty right returns left", "x/y", "", "x/y"},
		{"partial segment is not overlap", "a/toolkit", "tool/src", "a/toolkit/tool/src"},
		{"prefers longest overlap", "a/b/a", "a/b", "a/b/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MergeOverlapping(tt.a, tt.b, "/"))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want string
	}{
		{"absolute wins", "/base", "/other/place", "/other/place"},
		{"dot resolves against from", "/base", "./x", "/base/x"},
		{"dotdot resolves against from", "/base/sub", "../x", "/base/x"},
		{"dotdot clamps at root", "/base", "../../../x", "/x"},
		{"forward reference merges overlap", "/projects/toolkit", "toolkit/src", "/projects/toolkit/src"},
		{"forward reference without overlap appends", "/projects", "lib/src", "/projects/lib/src"},
		{"empty to cleans from", "/base//sub/", "", "/base/sub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.from, tt.to))
		})
	}
}

func TestRelativeOrAbsolute(t *testing.T) {
	// Inside the subtree: plain relative path.
	require.Equal(t, "b/c", RelativeOrAbsolute("/a", "/a/b/c"))

	// Outside the subtree: absolute path, never a ".." escape.
	got := RelativeOrAbsolute("/a/b", "/other")
	require.Equal(t, "/other", got)

	// Sibling directories would relativize to "../x"; absolute wins.
	got = RelativeOrAbsolute("/a/b", "/a/x")
	require.Equal(t, "/a/x", got)

	// Identity is not an escape.
	require.Equal(t, ".", RelativeOrAbsolute("/a", "/a"))
}

func TestContains(t *testing.T) {
	tests := []struct {
		container string
		candidate string
		want      bool
	}{
		{"/a", "/a/b", true},
		{"/a", "/a/b/c", true},
		{"/a", "/a", false},
		{"/a", "/b", false},
		{"/a/b", "/a", false},
		{"/foo", "/foobar", false},
		{"/foo", "/foo/bar", true},
		{"/a", "/a/b/../b", true},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Contains(tt.container, tt.candidate),
			"Contains(%q, %q)", tt.container, tt.candidate)
	}
}

func TestCommonRoot(t *testing.T) {
	require.Equal(t, "/a/b", CommonRoot("/a/b/c", "/a/b/d"))
	require.Equal(t, "a", CommonRoot("a/x", "a/y"))
	require.Equal(t, "", CommonRoot("/a", "/b"))
	require.Equal(t, "/a", CommonRoot("/a", "/a/b"))
}

func TestRelative(t *testing.T) {
	require.Equal(t, "b/c", Relative("/a", "/a/b/c"))
	require.Equal(t, ".", Relative("/a/b", "/a/b"))
	require.Equal(t, "/other", Relative("/a", "/other"))
}

func TestSplit(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, Split("/a/b/c"))
	require.Equal(t, []string{"a", "b"}, Split("a//b/"))
	require.Equal(t, []string{"x", "y"}, Split(`x\y`))
	require.Nil(t, Split("/"))
	require.Nil(t, Split(""))
	require.Nil(t, Split("."))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, ".", Normalize(""))
	require.Equal(t, "a/b", Normalize("a//b/"))
	require.Equal(t, "a/b", Normalize(`a\.\b`))
	require.Equal(t, "/a", Normalize("/x/../a"))
}
