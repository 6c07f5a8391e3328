package entry

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Option configures entry construction.
type Option func(*options)

type options struct {
	fsys billy.Filesystem
}

// WithFilesystem sets the billy.Filesystem backing the entry's I/O.
// The default is the local filesystem rooted at "/".
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		o.fsys = osfs.New("/")
	}
	return o
}
