package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandRoot resolves the configured root token to an absolute path.
// "~" and "~/..." expand to the invoking user's home directory; literal
// absolute paths pass through unchanged. Anything else fails with
// InvalidRootError. Pure: no filesystem access beyond the home lookup.
func ExpandRoot(token string) (string, error) {
	if token == "" {
		return "", &InvalidRootError{Root: token, Reason: "root must not be empty"}
	}

	if token == "~" || strings.HasPrefix(token, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &InvalidRootError{Root: token, Reason: "cannot determine home directory: " + err.Error()}
		}
		if token == "~" {
			return home, nil
		}
		return filepath.Join(home, token[2:]), nil
	}

	if !filepath.IsAbs(token) {
		return "", &InvalidRootError{Root: token, Reason: "root must be absolute or start with ~"}
	}
	return filepath.Clean(token), nil
}
