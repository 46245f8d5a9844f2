package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/czifro/workspaces/internal/log"
)

func TestRunContext(t *testing.T) {
	t.Parallel()

	if err := RunContext(context.Background(), "", "true"); err != nil {
		t.Errorf("RunContext(true) = %v, want nil", err)
	}
}

func TestRunContext_FailureCarriesStderr(t *testing.T) {
	t.Parallel()

	err := RunContext(context.Background(), "", "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("RunContext(failing) = nil, want error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q does not carry stderr", err)
	}
}

func TestRunContext_FailureWithoutStderr(t *testing.T) {
	t.Parallel()

	err := RunContext(context.Background(), "", "sh", "-c", "exit 7")
	if err == nil {
		t.Fatal("RunContext(failing) = nil, want error")
	}
}

func TestRunContext_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunContext(ctx, "", "true")
	if err != context.Canceled {
		t.Errorf("RunContext(cancelled) = %v, want context.Canceled", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, err := OutputContext(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("OutputContext(pwd) = %v, want nil", err)
	}
	// macOS tempdirs live behind a /private symlink.
	if got := strings.TrimSpace(string(out)); !strings.HasSuffix(got, dir) {
		t.Errorf("pwd = %q, want suffix %q", got, dir)
	}
}

func TestOutputContext(t *testing.T) {
	t.Parallel()

	out, err := OutputContext(context.Background(), "", "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("OutputContext() = %v, want nil", err)
	}
	if got := strings.TrimSpace(string(out)); got != "hello" {
		t.Errorf("output = %q, want hello", got)
	}
}

func TestOutputContext_FailureCarriesStderr(t *testing.T) {
	t.Parallel()

	_, err := OutputContext(context.Background(), "", "sh", "-c", "echo nope >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext(failing) = nil, want error")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q does not carry stderr", err)
	}
}

func TestRunContext_VerboseEchoesCommand(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))

	if err := RunContext(ctx, "", "true"); err != nil {
		t.Fatalf("RunContext(true) = %v, want nil", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "$ true") {
		t.Errorf("verbose echo = %q, want prefix %q", got, "$ true")
	}
}
