package captest

import (
	"testing"

	"github.com/jmgilman/capfs"
	"github.com/jmgilman/capfs/pathutil"
)

// derivationChains are fragment sequences applied one after another, each
// against the node produced by the previous step. They mix plain names,
// navigation, absolute reinterpretation, and hostile traversal.
var derivationChains = [][]string{
	{"a", "b", "c"},
	{"a/b", "../c", "./d"},
	{"../../..", "x"},
	{"/etc", "passwd/.."},
	{"a", "..", "a", "..", "a"},
	{`windows\style\path`, "..", "other"},
	{"deep/nested/tree/of/dirs", "/top", "../sibling"},
}

// TestContainment verifies that every node reachable by derivation keeps
// its real path inside the cap's real path.
func TestContainment(t *testing.T, root *capfs.Dir) {
	rootReal := root.ToReal().Path()

	for _, chain := range derivationChains {
		node := root
		for _, fragment := range chain {
			next, err := node.GetDirectory(fragment)
			if err != nil {
				t.Fatalf("GetDirectory(%q): got error %v, want nil", fragment, err)
			}
			node = next

			nodeReal := node.ToReal().Path()
			if nodeReal != rootReal && !pathutil.Contains(rootReal, nodeReal) {
				t.Errorf("derivation %v: real path %q escaped boundary %q", chain, nodeReal, rootReal)
			}
		}
	}
}

// TestClamping verifies that excess ".." traversal is absorbed at the
// boundary: a fragment prefixed with any amount of upward navigation
// resolves to the same node as the fragment alone.
func TestClamping(t *testing.T, root *capfs.Dir) {
	clamped, err := root.GetDirectory("../../../x")
	if err != nil {
		t.Fatalf("GetDirectory(../../../x): got error %v, want nil", err)
	}
	plain, err := root.GetDirectory("x")
	if err != nil {
		t.Fatalf("GetDirectory(x): got error %v, want nil", err)
	}

	if clamped.Path() != plain.Path() {
		t.Errorf("clamping: got virtual path %q, want %q", clamped.Path(), plain.Path())
	}
	if clamped.ToReal().Path() != plain.ToReal().Path() {
		t.Errorf("clamping: got real path %q, want %q", clamped.ToReal().Path(), plain.ToReal().Path())
	}

	// Clamping is idempotent at the cap itself.
	up, err := root.GetDirectory("..")
	if err != nil {
		t.Fatalf("GetDirectory(..): got error %v, want nil", err)
	}
	if up.Path() != root.Path() {
		t.Errorf("GetDirectory(..) at cap: got %q, want %q", up.Path(), root.Path())
	}
}

// TestAbsoluteReinterpretation verifies that absolute fragments are
// stripped of their root marker and treated as cap-relative.
func TestAbsoluteReinterpretation(t *testing.T, root *capfs.Dir) {
	absolute, err := root.GetDirectory("/a/b")
	if err != nil {
		t.Fatalf("GetDirectory(/a/b): got error %v, want nil", err)
	}
	relative, err := root.GetDirectory("a/b")
	if err != nil {
		t.Fatalf("GetDirectory(a/b): got error %v, want nil", err)
	}

	if absolute.Path() != relative.Path() {
		t.Errorf("absolute reinterpretation: got virtual path %q, want %q", absolute.Path(), relative.Path())
	}
	if absolute.ToReal().Path() != relative.ToReal().Path() {
		t.Errorf("absolute reinterpretation: got real path %q, want %q", absolute.ToReal().Path(), relative.ToReal().Path())
	}
}

// TestCapStability verifies that Cap returns the identical root reference
// at every derivation depth.
func TestCapStability(t *testing.T, root *capfs.Dir) {
	node := root
	for _, fragment := range []string{"a", "b/c", "..", "/d", "../../../../e"} {
		next, err := node.GetDirectory(fragment)
		if err != nil {
			t.Fatalf("GetDirectory(%q): got error %v, want nil", fragment, err)
		}
		node = next

		if node.Cap() != root.Cap() {
			t.Errorf("after %q: Cap() returned a different root reference", fragment)
		}
	}

	file, err := node.GetFile("leaf.txt")
	if err != nil {
		t.Fatalf("GetFile(leaf.txt): got error %v, want nil", err)
	}
	if file.Cap() != root.Cap() {
		t.Error("file Cap() returned a different root reference")
	}
}

// TestRoundTrip verifies that descending one level and navigating back up
// returns to the cap's own path.
func TestRoundTrip(t *testing.T, root *capfs.Dir) {
	down, err := root.GetDirectory("a")
	if err != nil {
		t.Fatalf("GetDirectory(a): got error %v, want nil", err)
	}
	back, err := down.GetDirectory("..")
	if err != nil {
		t.Fatalf("GetDirectory(..): got error %v, want nil", err)
	}

	if back.Path() != root.Path() {
		t.Errorf("round trip: got virtual path %q, want %q", back.Path(), root.Path())
	}
	if back.ToReal().Path() != root.ToReal().Path() {
		t.Errorf("round trip: got real path %q, want %q", back.ToReal().Path(), root.ToReal().Path())
	}
}
