package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestExpandRoot_Absolute(t *testing.T) {
	t.Parallel()

	got, err := ExpandRoot("/srv/dev")
	if err != nil {
		t.Fatalf("ExpandRoot(/srv/dev) = %v, want nil", err)
	}
	if got != "/srv/dev" {
		t.Errorf("ExpandRoot(/srv/dev) = %q, want /srv/dev", got)
	}
}

func TestExpandRoot_CleansPath(t *testing.T) {
	t.Parallel()

	got, err := ExpandRoot("/srv//dev/../dev")
	if err != nil {
		t.Fatalf("ExpandRoot = %v, want nil", err)
	}
	if got != "/srv/dev" {
		t.Errorf("ExpandRoot = %q, want /srv/dev", got)
	}
}

func TestExpandRoot_HomeToken(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandRoot("~")
	if err != nil {
		t.Fatalf("ExpandRoot(~) = %v, want nil", err)
	}
	if got != home {
		t.Errorf("ExpandRoot(~) = %q, want %q", got, home)
	}
}

func TestExpandRoot_HomeRelative(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandRoot("~/dev/src")
	if err != nil {
		t.Fatalf("ExpandRoot(~/dev/src) = %v, want nil", err)
	}
	if want := filepath.Join(home, "dev", "src"); got != want {
		t.Errorf("ExpandRoot(~/dev/src) = %q, want %q", got, want)
	}
}

func TestExpandRoot_Empty(t *testing.T) {
	t.Parallel()

	_, err := ExpandRoot("")
	var rootErr *InvalidRootError
	if !errors.As(err, &rootErr) {
		t.Fatalf("ExpandRoot(\"\") = %v, want InvalidRootError", err)
	}
}

func TestExpandRoot_Relative(t *testing.T) {
	t.Parallel()

	_, err := ExpandRoot("dev/src")
	var rootErr *InvalidRootError
	if !errors.As(err, &rootErr) {
		t.Fatalf("ExpandRoot(dev/src) = %v, want InvalidRootError", err)
	}
	if rootErr.Root != "dev/src" {
		t.Errorf("InvalidRootError.Root = %q, want dev/src", rootErr.Root)
	}
}
