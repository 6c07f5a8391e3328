package capfs

import (
	"github.com/gobwas/glob"

	"github.com/jmgilman/capfs/errors"
)

// Listing is the result of reading or globbing a capped directory. Every
// result is re-wrapped inside the boundary: directories as children of the
// receiver, files as File values owned by it. Plain entries never appear.
type Listing struct {
	Files       []*File
	Directories []*Dir
}

// Read lists the immediate children of the directory. A non-empty pattern
// filters children by name with extended glob syntax ("*", "?", character
// classes). An empty pattern lists everything.
func (d *Dir) Read(pattern string) (*Listing, error) {
	matcher, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	infos, err := d.ToReal().List()
	if err != nil {
		return nil, err
	}

	listing := &Listing{}
	for _, info := range infos {
		if matcher != nil && !matcher.Match(info.Name()) {
			continue
		}
		if err := listing.add(d, info.Name(), info.IsDir()); err != nil {
			return nil, err
		}
	}
	return listing, nil
}

// Glob lists all descendants of the directory whose cap-relative path
// matches the pattern. "**" crosses directory separators, "*" and "?" do
// not. An empty pattern matches every descendant.
func (d *Dir) Glob(pattern string) (*Listing, error) {
	if pattern == "" {
		pattern = "**"
	}
	matcher, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	listing := &Listing{}
	err = d.walk("", func(rel string, isDir bool) error {
		if !matcher.Match(rel) {
			return nil
		}
		return listing.add(d, rel, isDir)
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// add re-wraps one listed path as a capped node derived from dir.
func (l *Listing) add(dir *Dir, rel string, isDir bool) error {
	if isDir {
		child, err := dir.GetDirectory(rel)
		if err != nil {
			return err
		}
		l.Directories = append(l.Directories, child)
		return nil
	}

	file, err := dir.GetFile(rel)
	if err != nil {
		return err
	}
	l.Files = append(l.Files, file)
	return nil
}

// walk visits every descendant of d depth first, passing fn the path
// relative to d joined with forward slashes.
func (d *Dir) walk(rel string, fn func(rel string, isDir bool) error) error {
	node := d
	if rel != "" {
		var err error
		node, err = d.GetDirectory(rel)
		if err != nil {
			return err
		}
	}

	infos, err := node.ToReal().List()
	if err != nil {
		return err
	}

	for _, info := range infos {
		childRel := info.Name()
		if rel != "" {
			childRel = rel + "/" + info.Name()
		}
		if err := fn(childRel, info.IsDir()); err != nil {
			return err
		}
		if info.IsDir() {
			if err := d.walk(childRel, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// compilePattern compiles an extended glob with "/" as the separator, so
// "**" is required to cross directory levels. Returns nil for an empty
// pattern.
func compilePattern(pattern string) (glob.Glob, error) {
	if pattern == "" {
		return nil, nil
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodePattern, "compile pattern %q", pattern)
	}
	return g, nil
}
