package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sillisoft/sillisetup/internal/config"
)

// Installer commits staged artifacts into their final locations.
type Installer struct {
	cfg          *config.InstallConfig
	installRoot  string
	documentsDir string
	verifier     *Verifier
	log          Logger
}

// NewInstaller creates an installer for the given configuration and
// destination directories. A nil logger falls back to a no-op.
func NewInstaller(cfg *config.InstallConfig, installRoot, documentsDir string, log Logger) *Installer {
	if log == nil {
		log = defaultLogger()
	}
	return &Installer{
		cfg:          cfg,
		installRoot:  installRoot,
		documentsDir: documentsDir,
		verifier:     NewVerifier(log),
		log:          log,
	}
}

// ExePath returns the final location of the installed executable.
func (i *Installer) ExePath() string {
	return filepath.Join(i.installRoot, i.cfg.ExeFileName)
}

// IsInstalled checks whether the executable is already present in the
// install root.
func (i *Installer) IsInstalled() (bool, error) {
	info, err := os.Stat(i.ExePath())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat installed executable: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Install commits the staged artifacts. Steps, each a hard gate on the next:
//
//  1. The staged executable must exist (covers upstream failures that were
//     not already fatal).
//  2. Its fingerprint must verify; a mismatch also deletes the staged file.
//  3. When signature verification is configured, the detached signature
//     must verify.
//  4. The install root is created if absent.
//  5. The executable is copied over any previous version.
//
// The optional instructions copy runs last and is non-fatal: it is a
// convenience deliverable, not the application itself.
func (i *Installer) Install(staged Staged) error {
	if !fileExists(staged.ExePath) {
		return fmt.Errorf("%w: %s", ErrArtifactMissing, staged.ExePath)
	}

	if _, _, err := i.verifier.VerifyFingerprint(staged.ExePath, i.cfg.ExpectedSHA256); err != nil {
		return err
	}

	if i.cfg.PublicKeyPath != "" && staged.SignaturePath != "" {
		if err := i.verifier.VerifySignature(staged.ExePath, staged.SignaturePath, i.cfg.PublicKeyPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(i.installRoot, 0755); err != nil {
		return fmt.Errorf("%w: create install root %s: %v", ErrFilesystem, i.installRoot, err)
	}

	dest := i.ExePath()
	if err := copyFile(staged.ExePath, dest, 0755); err != nil {
		return fmt.Errorf("%w: copy %s to %s: %v", ErrFilesystem, staged.ExePath, dest, err)
	}
	i.log.Info("installed application executable", "path", dest)

	i.installInstructions(staged)

	return nil
}

// installInstructions copies the staged instructions document into the
// documents directory. Failures are warnings only.
func (i *Installer) installInstructions(staged Staged) {
	if staged.InstructionsPath == "" || !fileExists(staged.InstructionsPath) {
		return
	}

	dest := filepath.Join(i.documentsDir, i.cfg.InstructionsFileName)

	if err := os.MkdirAll(i.documentsDir, 0755); err != nil {
		i.log.Warn("could not create documents directory, skipping instructions",
			"dir", i.documentsDir, "error", err)
		return
	}

	if err := copyFile(staged.InstructionsPath, dest, 0644); err != nil {
		i.log.Warn("could not deliver instructions file",
			"path", dest, "error", err)
		return
	}

	i.log.Info("delivered instructions file", "path", dest)
}

// copyFile copies src to dst, truncating any existing destination.
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy contents: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	return nil
}
