// Package capfs provides a virtual directory containment engine: directory
// and file handles that present a sandboxed, cap-relative view of a real
// directory tree while transparently mapping every operation onto real
// filesystem paths.
//
// # Design Philosophy
//
// The package follows these principles:
//
//   - Containment by construction: every node derived from a boundary root
//     carries a real path inside the root's real path. Traversal beyond the
//     boundary is clamped, never an error.
//   - Lock-step derivation: a node's virtual path and real path are always
//     produced from the same segment list, so the two representations can
//     never disagree about which real directory a virtual path denotes.
//   - Explicit escape: the only way out of a sandbox is the typed ToReal
//     conversion, which returns a plain entry.Entry. Listings re-wrap every
//     result, so plain entries never leak from a capped tree.
//   - Immutable nodes: derivation returns fresh values; no node is mutated
//     after construction, so concurrent derivation from one root is safe.
//
// # Node Family
//
//   - Dir: a capped directory. A root Dir is its own cap; children capture
//     the root reference at construction.
//   - File: the file-level counterpart, always owned by exactly one Dir.
//   - TempDir: a Dir rooted under the OS temp directory with synchronous
//     creation, lineage validation, and recursive Remove.
//
// # Usage Example
//
//	root, err := capfs.NewTemp("myapp")
//	if err != nil {
//	    return err
//	}
//	defer func() { _ = root.Remove() }()
//
//	cfg, err := root.GetDirectory("data")
//	if err != nil {
//	    return err
//	}
//	file, err := cfg.GetFile("config.json")
//	if err != nil {
//	    return err
//	}
//	// file.Path() is "/data/config.json"; file.ToReal().Path() is the
//	// matching location under the generated temp root.
//
// All I/O goes through a go-billy filesystem: the local filesystem by
// default, or an in-memory one via WithFilesystem for tests.
package capfs
