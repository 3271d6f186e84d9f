package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteSchema writes content to a file called name in a fresh temporary
// directory and returns its path. It fails the test immediately on error.
func WriteSchema(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write schema file")
	return path
}

// Setenv sets every pair in the process environment for the duration of
// the test. Tests using it cannot run in parallel.
func Setenv(t *testing.T, values map[string]string) {
	t.Helper()

	for k, v := range values {
		t.Setenv(k, v)
	}
}
