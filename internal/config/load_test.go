package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "workspaces.yaml")
	doc := "root: /some/root\nworkspaces:\n  a:\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tree, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if tree.Root != "/some/root" {
		t.Errorf("Root = %q, want /some/root", tree.Root)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load(absent) = nil, want error")
	}
}

func TestLoad_InvalidDocumentNamesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "workspaces.yaml")
	if err := os.WriteFile(path, []byte("root: relative\nworkspaces:\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load(invalid) = nil, want error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "workspaces.yaml")

	got, err := Init(path, false)
	if err != nil {
		t.Fatalf("Init() = %v, want nil", err)
	}
	if got != path {
		t.Errorf("Init() = %q, want %q", got, path)
	}

	// The starter document must itself parse.
	if _, err := Load(path); err != nil {
		t.Errorf("starter config does not load: %v", err)
	}

	// Refuses to overwrite without force.
	if _, err := Init(path, false); err == nil {
		t.Error("Init() over existing file = nil, want error")
	}
	if _, err := Init(path, true); err != nil {
		t.Errorf("Init(force) = %v, want nil", err)
	}
}
