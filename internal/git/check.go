package git

import (
	"errors"
	"os/exec"
)

// CheckGit verifies that the git binary is available on PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.New("git is not installed or not in PATH")
	}
	return nil
}
