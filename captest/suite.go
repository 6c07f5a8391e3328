// Package captest provides a conformance test suite for the capfs
// containment contract.
//
// Any way of constructing a boundary root can be validated against the
// invariants every capped tree must uphold: containment of derived real
// paths, clamped traversal, cap-relative reinterpretation of absolute
// fragments, cap stability across derivation depth, and listings that
// never leak uncapped entries.
//
// Example usage:
//
//	func TestMemoryBoundary(t *testing.T) {
//	    captest.TestSuite(t, func() *capfs.Dir {
//	        fsys := memfs.New()
//	        _ = fsys.MkdirAll("/sandbox", 0o755)
//	        root, _ := capfs.NewRoot("/sandbox", capfs.WithFilesystem(fsys))
//	        return root
//	    })
//	}
package captest

import (
	"testing"

	"github.com/jmgilman/capfs"
)

// TestSuite runs all conformance tests against boundary roots produced by
// newRoot. The function must return a fresh root over an empty, writable
// filesystem for each call; the listing and delete groups create content
// beneath it.
func TestSuite(t *testing.T, newRoot func() *capfs.Dir) {
	t.Run("Containment", func(t *testing.T) {
		TestContainment(t, newRoot())
	})
	t.Run("Clamping", func(t *testing.T) {
		TestClamping(t, newRoot())
	})
	t.Run("AbsoluteReinterpretation", func(t *testing.T) {
		TestAbsoluteReinterpretation(t, newRoot())
	})
	t.Run("CapStability", func(t *testing.T) {
		TestCapStability(t, newRoot())
	})
	t.Run("RoundTrip", func(t *testing.T) {
		TestRoundTrip(t, newRoot())
	})
	t.Run("Listing", func(t *testing.T) {
		TestListing(t, newRoot())
	})
	t.Run("Delete", func(t *testing.T) {
		TestDelete(t, newRoot())
	})
}
