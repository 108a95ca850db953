package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp" //nolint:staticcheck // Using ProtonMail's maintained fork

	"github.com/sillisoft/sillisetup/internal/config"
)

// Verifier handles cryptographic verification of staged artifacts.
type Verifier struct {
	log Logger
}

// NewVerifier creates a new verifier. A nil logger falls back to a no-op.
func NewVerifier(log Logger) *Verifier {
	if log == nil {
		log = defaultLogger()
	}
	return &Verifier{log: log}
}

// VerifyFingerprint computes the SHA-256 digest of the file at path and
// compares it against the expected 64-hex-digit fingerprint, case- and
// whitespace-insensitively.
//
// On a mismatch the staged file is deleted before returning, so after this
// call the path either holds a file matching the expected fingerprint or
// does not exist. The returned string is the normalized actual fingerprint
// when one could be computed.
func (v *Verifier) VerifyFingerprint(path, expected string) (VerifyResult, string, error) {
	want, err := config.NormalizeFingerprint(expected)
	if err != nil {
		return ResultComputeFailed, "", fmt.Errorf("%w: expected fingerprint: %v", ErrHashCompute, err)
	}

	actual, err := computeSHA256(path)
	if err != nil {
		return ResultComputeFailed, "", fmt.Errorf("%w: %s: %v", ErrHashCompute, path, err)
	}

	got := strings.ToUpper(actual)
	if got != want {
		// Verified-or-absent: never leave an unverified file behind for a
		// later retry to pick up.
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			v.log.Error("failed to delete unverified staging file", "path", path, "error", rmErr)
		}
		return ResultMismatch, got, fmt.Errorf("%w for %s:\nexpected: %s\nactual:   %s",
			ErrHashMismatch, path, want, got)
	}

	v.log.Debug("fingerprint verified", "path", path, "sha256", got)
	return ResultVerified, got, nil
}

// VerifySignature verifies a detached GPG signature over the artifact using
// the public key(s) at keyPath. Both armored and binary signatures are
// accepted.
func (v *Verifier) VerifySignature(artifactPath, signaturePath, keyPath string) error {
	keyring, err := loadKeyring(keyPath)
	if err != nil {
		return fmt.Errorf("%w: load public key %s: %v", ErrSignature, keyPath, err)
	}

	artifactFile, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("%w: open artifact %s: %v", ErrSignature, artifactPath, err)
	}
	defer artifactFile.Close()

	sigFile, err := os.Open(signaturePath)
	if err != nil {
		return fmt.Errorf("%w: open signature %s: %v", ErrSignature, signaturePath, err)
	}
	defer sigFile.Close()

	// Try armored first, then binary
	_, err = openpgp.CheckArmoredDetachedSignature(keyring, artifactFile, sigFile, nil)
	if err != nil {
		artifactFile.Seek(0, io.SeekStart)
		sigFile.Seek(0, io.SeekStart)
		_, err = openpgp.CheckDetachedSignature(keyring, artifactFile, sigFile, nil)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSignature, artifactPath, err)
	}

	v.log.Debug("signature verified", "path", artifactPath)
	return nil
}

// loadKeyring loads a GPG keyring from a key file, armored or not.
func loadKeyring(keyPath string) (openpgp.EntityList, error) {
	keyFile, err := os.Open(keyPath)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	defer keyFile.Close()

	keyring, err := openpgp.ReadArmoredKeyRing(keyFile)
	if err != nil {
		keyFile.Seek(0, io.SeekStart)
		keyring, err = openpgp.ReadKeyRing(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read keyring: %w", err)
		}
	}

	if len(keyring) == 0 {
		return nil, fmt.Errorf("keyring is empty")
	}

	return keyring, nil
}

// computeSHA256 calculates the SHA-256 digest of a file as lowercase hex.
func computeSHA256(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
