package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewStagingDir creates a private staging directory for this invocation
// under the system temp directory. Callers remove it when the run ends;
// nothing in it is expected to survive a run.
func NewStagingDir() (string, error) {
	dir := filepath.Join(os.TempDir(), "sillisetup-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("%w: create staging directory %s: %v", ErrFilesystem, dir, err)
	}
	return dir, nil
}

// fileExists checks if a file exists and is not empty.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
