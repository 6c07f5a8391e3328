// Package pathutil provides the pure path algebra underpinning the capfs
// boundary engine: segment-aware merging, resolution, relativization, and
// containment tests.
//
// All functions are synchronous, side-effect free, and never touch the
// filesystem. Paths are treated as ordered segment lists; string prefix
// tricks are never used for containment decisions.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Normalize cleans a path and ensures forward slashes.
// It applies: backslash conversion → Clean → ToSlash.
// Returns "." for empty paths.
func Normalize(path string) string {
	if path == "" {
		return "."
	}
	path = strings.ReplaceAll(path, "\\", "/")
	return filepath.ToSlash(filepath.Clean(path))
}

// Split returns the ordered segment list of a path, with separators and
// empty segments removed. The volume name and root marker do not appear in
// the result. Returns nil for empty, ".", and root-only paths.
func Split(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")
	if vol := filepath.VolumeName(path); vol != "" {
		path = path[len(vol):]
	}

	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s == "" || s == "." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

// MergeOverlapping joins two paths without duplicating their overlap: the
// longest suffix of a's segments that equals a prefix of b's segments
// appears once in the result. When no overlap exists the paths are plainly
// concatenated. An empty operand returns the other unchanged.
//
//	MergeOverlapping("projects/toolkit", "toolkit/src", "/") == "projects/toolkit/src"
func MergeOverlapping(a, b, sep string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}

	as := strings.Split(a, sep)
	bs := strings.Split(b, sep)

	// Longest suffix of as equal to a prefix of bs.
	max := len(as)
	if len(bs) < max {
		max = len(bs)
	}
	overlap := 0
	for n := max; n > 0; n-- {
		if segmentsEqual(as[len(as)-n:], bs[:n]) {
			overlap = n
			break
		}
	}

	merged := append(append([]string{}, as...), bs[overlap:]...)
	return strings.Join(merged, sep)
}

func segmentsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Resolve resolves to against from.
//
// Absolute to is returned in its cleaned, OS-resolved form regardless of
// from. A to that starts with relative navigation ("." or "..") resolves
// against from via standard path resolution. Anything else is treated as a
// forward reference and merged via MergeOverlapping, then cleaned.
func Resolve(from, to string) string {
	if to == "" {
		return filepath.Clean(from)
	}
	to = filepath.FromSlash(strings.ReplaceAll(to, "\\", "/"))
	if filepath.IsAbs(to) {
		return filepath.Clean(to)
	}

	first := to
	if i := strings.IndexAny(to, `/\`); i >= 0 {
		first = to[:i]
	}
	if first == "." || first == ".." {
		return filepath.Join(from, to)
	}

	return filepath.Clean(MergeOverlapping(from, to, string(filepath.Separator)))
}

// RelativeOrAbsolute computes the path of to relative to from. If the
// relative form would begin with "..", the absolute form of to is returned
// instead: relative outputs never expose upward escape.
func RelativeOrAbsolute(from, to string) string {
	rel, err := filepath.Rel(from, to)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Clean(to)
	}
	return rel
}

// Contains reports whether candidate is a strict descendant of container.
// A path does not contain itself, and comparison is segment-aware:
// "/foo" does not contain "/foobar".
func Contains(container, candidate string) bool {
	cs := Split(filepath.Clean(container))
	ds := Split(filepath.Clean(candidate))
	if len(ds) <= len(cs) {
		return false
	}
	return segmentsEqual(cs, ds[:len(cs)])
}

// CommonRoot returns the longest common segment prefix of a and b, joined
// with forward slashes. A leading "/" is preserved when both inputs carry
// one. Returns "" when the paths share no root.
func CommonRoot(a, b string) string {
	as := Split(a)
	bs := Split(b)

	var common []string
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			break
		}
		common = append(common, as[i])
	}
	if len(common) == 0 {
		return ""
	}

	joined := strings.Join(common, "/")
	if isRooted(a) && isRooted(b) {
		return "/" + joined
	}
	return joined
}

// Relative expresses target relative to base when base contains it (or the
// two are equal, in which case "." is returned). A target outside base is
// returned unchanged.
func Relative(base, target string) string {
	bs := Split(base)
	ts := Split(target)
	if segmentsEqual(bs, ts) {
		return "."
	}
	if !Contains(base, target) {
		return target
	}
	return strings.Join(ts[len(bs):], "/")
}

func isRooted(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")
	if vol := filepath.VolumeName(path); vol != "" {
		path = path[len(vol):]
	}
	return strings.HasPrefix(path, "/")
}
