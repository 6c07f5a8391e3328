package capfs

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Option configures boundary construction.
type Option func(*config)

type config struct {
	fsys     billy.Filesystem
	tempRoot string
}

// WithFilesystem sets the billy.Filesystem backing all I/O for the
// boundary and every node derived from it. The default is the local
// filesystem rooted at "/". Tests typically pass memfs.New().
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithTempRoot overrides the directory under which temp boundaries are
// created. The default is os.TempDir(). The override participates in
// lineage validation, so temp families built over an in-memory filesystem
// remain checkable.
func WithTempRoot(path string) Option {
	return func(c *config) {
		c.tempRoot = path
	}
}

func applyConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.fsys == nil {
		c.fsys = osfs.New("/")
	}
	if c.tempRoot == "" {
		c.tempRoot = os.TempDir()
	}
	return c
}
