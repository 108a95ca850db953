package artifact

import (
	"errors"
)

// Error categories surfaced to automation callers. The CLI maps these to
// exit codes with errors.Is.
var (
	// ErrNetwork marks a failed required download.
	ErrNetwork = errors.New("download failed")
	// ErrHashMismatch marks a staged file whose fingerprint does not match
	// the pinned value. The staged file is already deleted when this is
	// returned.
	ErrHashMismatch = errors.New("fingerprint mismatch")
	// ErrHashCompute marks a failure to compute a fingerprint at all,
	// distinct from a mismatch.
	ErrHashCompute = errors.New("fingerprint computation failed")
	// ErrSignature marks a failed detached-signature verification.
	ErrSignature = errors.New("signature verification failed")
	// ErrArtifactMissing marks a staged artifact that is absent when the
	// installer commits.
	ErrArtifactMissing = errors.New("staged artifact missing")
	// ErrFilesystem marks a failed directory creation or copy.
	ErrFilesystem = errors.New("filesystem operation failed")
)

// Task describes one remote file to fetch into a local staging path.
type Task struct {
	// SourceURL is the remote location.
	SourceURL string
	// StagingPath is the local destination. Any stale file from a previous
	// run is overwritten.
	StagingPath string
	// Required tasks abort the whole run on failure; optional tasks degrade
	// to a warning.
	Required bool
	// Label is the user-facing artifact name for progress and errors.
	Label string
}

// Staged holds the staging locations consumed by the Installer.
type Staged struct {
	// ExePath is the staged application executable.
	ExePath string
	// SignaturePath is the staged detached signature, empty when signature
	// verification is not configured.
	SignaturePath string
	// InstructionsPath is the staged instructions document, empty when the
	// optional feature was not selected.
	InstructionsPath string
}

// VerifyResult classifies a fingerprint verification attempt.
type VerifyResult int

const (
	// ResultVerified means the fingerprint matched.
	ResultVerified VerifyResult = iota
	// ResultMismatch means the fingerprint differed; the file was deleted.
	ResultMismatch
	// ResultComputeFailed means the digest could not be computed at all.
	ResultComputeFailed
)

// String returns the string representation of the verification result.
func (r VerifyResult) String() string {
	switch r {
	case ResultVerified:
		return "Verified"
	case ResultMismatch:
		return "Mismatch"
	case ResultComputeFailed:
		return "ComputeFailed"
	default:
		return "Unknown"
	}
}

// Logger provides structured logging for artifact operations. Callers plug
// in their own implementation; the default is a no-op.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type noopLogger struct{}

func (n *noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Error(msg string, keysAndValues ...interface{}) {}

func defaultLogger() Logger {
	return &noopLogger{}
}
