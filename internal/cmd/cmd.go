// Package cmd provides helpers for executing external commands with
// proper error handling.
//
// Commands are run with context support so a user interrupt cancels the
// in-flight process. Stderr is captured and folded into the returned
// error, making failures (a bad clone URL, an auth prompt gone wrong)
// readable without digging through raw exit codes.
//
// The workspaces tool shells out to the git CLI rather than using a Go
// git library. This keeps the user's SSH keys, credential helpers, and
// global git configuration working exactly as they do on the command
// line.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/czifro/workspaces/internal/log"
)

// RunContext executes a command in dir (or the current directory if dir
// is empty), returning stderr in the error message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command in dir and returns stdout, with
// stderr folded into the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr
	output, err := c.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return output, nil
}
