package log

import (
	"bytes"
	"context"
	"testing"
)

func TestLogger_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Printf("restored %d paths\n", 3)

	if got, want := buf.String(), "restored 3 paths\n"; got != want {
		t.Errorf("Printf output = %q, want %q", got, want)
	}
}

func TestLogger_QuietSuppresses(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, true)
	l.Printf("diagnostic\n")
	l.Println("more")
	l.Command("git", "clone", "url")

	if got := buf.String(); got != "" {
		t.Errorf("quiet logger wrote %q, want nothing", got)
	}
}

func TestLogger_CommandOnlyWhenVerbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Command("git", "clone", "url")
	if got := buf.String(); got != "" {
		t.Errorf("non-verbose Command wrote %q, want nothing", got)
	}

	l = New(&buf, true, false)
	l.Command("git", "clone", "url")
	if got, want := buf.String(), "$ git clone url\n"; got != want {
		t.Errorf("Command output = %q, want %q", got, want)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	ctx := WithLogger(context.Background(), l)

	if got := FromContext(ctx); got != l {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContext_Detached(t *testing.T) {
	t.Parallel()

	// Must not panic; writes go to io.Discard.
	l := FromContext(context.Background())
	l.Printf("dropped\n")
	l.Command("git", "status")
	if l.Verbose() {
		t.Error("detached logger reports verbose")
	}
}
