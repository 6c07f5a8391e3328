package captest

import (
	"testing"

	"github.com/jmgilman/capfs"
	"github.com/jmgilman/capfs/errors"
	"github.com/jmgilman/capfs/pathutil"
)

// seedTree creates a small tree under root:
//
//	root/
//	  docs/
//	    guide.md
//	  src/
//	    main.go
//	  readme.txt
func seedTree(t *testing.T, root *capfs.Dir) {
	t.Helper()

	for _, dir := range []string{"docs", "src"} {
		child, err := root.GetDirectory(dir)
		if err != nil {
			t.Fatalf("GetDirectory(%s): setup failed: %v", dir, err)
		}
		if err := child.AssureExists(0o755); err != nil {
			t.Fatalf("AssureExists(%s): setup failed: %v", dir, err)
		}
	}

	for path, content := range map[string]string{
		"docs/guide.md": "guide",
		"src/main.go":   "package main",
		"readme.txt":    "hello",
	} {
		file, err := root.GetFile(path)
		if err != nil {
			t.Fatalf("GetFile(%s): setup failed: %v", path, err)
		}
		if err := file.Write([]byte(content), 0o644); err != nil {
			t.Fatalf("Write(%s): setup failed: %v", path, err)
		}
	}
}

// TestListing verifies that Read and Glob re-wrap every result inside the
// boundary and that patterns filter as documented.
func TestListing(t *testing.T, root *capfs.Dir) {
	if err := root.AssureExists(0o755); err != nil {
		t.Fatalf("AssureExists(root): setup failed: %v", err)
	}
	seedTree(t, root)

	listing, err := root.Read("")
	if err != nil {
		t.Fatalf("Read(): got error %v, want nil", err)
	}
	if got, want := len(listing.Directories), 2; got != want {
		t.Errorf("Read(): got %d directories, want %d", got, want)
	}
	if got, want := len(listing.Files), 1; got != want {
		t.Errorf("Read(): got %d files, want %d", got, want)
	}

	rootReal := root.ToReal().Path()
	for _, dir := range listing.Directories {
		if dir.Cap() != root.Cap() {
			t.Errorf("listed directory %s: Cap() is not the boundary root", dir.Path())
		}
		if !pathutil.Contains(rootReal, dir.ToReal().Path()) {
			t.Errorf("listed directory %s: real path %q outside boundary", dir.Path(), dir.ToReal().Path())
		}
	}
	for _, file := range listing.Files {
		if file.Cap() != root.Cap() {
			t.Errorf("listed file %s: Cap() is not the boundary root", file.Path())
		}
	}

	// Name patterns filter immediate children.
	filtered, err := root.Read("*.txt")
	if err != nil {
		t.Fatalf("Read(*.txt): got error %v, want nil", err)
	}
	if len(filtered.Files) != 1 || filtered.Files[0].Name() != "readme.txt" {
		t.Errorf("Read(*.txt): got %d files, want exactly readme.txt", len(filtered.Files))
	}
	if len(filtered.Directories) != 0 {
		t.Errorf("Read(*.txt): got %d directories, want 0", len(filtered.Directories))
	}

	// Recursive glob crosses directory levels only with "**".
	globbed, err := root.Glob("**/*.md")
	if err != nil {
		t.Fatalf("Glob(**/*.md): got error %v, want nil", err)
	}
	if len(globbed.Files) != 1 || globbed.Files[0].Path() != "/docs/guide.md" {
		t.Errorf("Glob(**/*.md): got %d files, want exactly /docs/guide.md", len(globbed.Files))
	}

	everything, err := root.Glob("")
	if err != nil {
		t.Fatalf("Glob(): got error %v, want nil", err)
	}
	if got, want := len(everything.Files), 3; got != want {
		t.Errorf("Glob(): got %d files, want %d", got, want)
	}
	if got, want := len(everything.Directories), 2; got != want {
		t.Errorf("Glob(): got %d directories, want %d", got, want)
	}
}

// TestDelete verifies the non-recursive delete contract: a populated
// directory refuses deletion with CodeNotEmpty, an emptied one succeeds.
func TestDelete(t *testing.T, root *capfs.Dir) {
	if err := root.AssureExists(0o755); err != nil {
		t.Fatalf("AssureExists(root): setup failed: %v", err)
	}

	dir, err := root.GetDirectory("data")
	if err != nil {
		t.Fatalf("GetDirectory(data): got error %v, want nil", err)
	}
	if err := dir.AssureExists(0o755); err != nil {
		t.Fatalf("AssureExists(data): setup failed: %v", err)
	}

	file, err := dir.GetFile("keep.txt")
	if err != nil {
		t.Fatalf("GetFile(keep.txt): got error %v, want nil", err)
	}
	if err := file.Write([]byte("keep"), 0o644); err != nil {
		t.Fatalf("Write(keep.txt): setup failed: %v", err)
	}

	err = dir.Delete()
	if errors.GetCode(err) != errors.CodeNotEmpty {
		t.Errorf("Delete(non-empty): got error %v, want code %s", err, errors.CodeNotEmpty)
	}

	if err := file.Delete(); err != nil {
		t.Fatalf("Delete(keep.txt): got error %v, want nil", err)
	}
	if err := dir.Delete(); err != nil {
		t.Errorf("Delete(empty): got error %v, want nil", err)
	}

	exists, err := dir.Exists()
	if err != nil {
		t.Fatalf("Exists(data): got error %v, want nil", err)
	}
	if exists {
		t.Error("Exists(data): directory still present after Delete")
	}
}
