// Package testutil provides utilities for testing sillisetup in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sillisoft/sillisetup/internal/apppaths"
)

// SetupTestEnv creates isolated test directories for each test.
// This ensures sillisetup tests never touch:
// - A real installation under the user's local application data
// - The user's actual reminder database or settings
// - The user's Documents folder
//
// The cleanup function is automatically handled by t.TempDir(),
// so callers don't need to manually clean up.
func SetupTestEnv(t *testing.T) {
	t.Helper()

	// Create temp directory (auto-cleaned by testing framework)
	tmpDir := t.TempDir()

	installRoot := filepath.Join(tmpDir, "install")
	dataRoot := filepath.Join(tmpDir, "appdata")
	documentsDir := filepath.Join(tmpDir, "documents")

	t.Setenv(apppaths.EnvInstallRoot, installRoot)
	t.Setenv(apppaths.EnvDataRoot, dataRoot)
	t.Setenv(apppaths.EnvDocumentsDir, documentsDir)

	for _, dir := range []string{installRoot, dataRoot, documentsDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}
}
