package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProjectRoot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "../../../")
	fi1, err := os.Stat(want)
	if err != nil {
		t.Fatal(err)
	}
	root, err := ProjectRoot()
	if err != nil {
		t.Fatal(err)
	}
	fi2, err := os.Stat(root)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(fi1, fi2) {
		t.Fatalf("ProjectRoot() = %q; want: %q", root, want)
	}
}

func TestFindModfileRelative(t *testing.T) {
	if _, err := findModfile("relative/path", modulePath); err == nil {
		t.Fatal("findModfile accepted a relative directory")
	}
}

func TestFindModfileMissing(t *testing.T) {
	dir := t.TempDir()
	if _, err := findModfile(dir, modulePath); err == nil {
		t.Fatalf("findModfile(%q) found a go.mod for %q", dir, modulePath)
	}
}
