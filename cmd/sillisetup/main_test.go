package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sillisoft/sillisetup/internal/artifact"
	"github.com/sillisoft/sillisetup/internal/config"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"generic error", errors.New("boom"), exitFailure},
		{"invalid config", fmt.Errorf("%w: exe_url missing", config.ErrInvalid), exitConfigInvalid},
		{"insecure url", fmt.Errorf("%w: exe_url", config.ErrInsecureURL), exitConfigInvalid},
		{"network failure", fmt.Errorf("%w: executable", artifact.ErrNetwork), exitNetwork},
		{"hash mismatch", fmt.Errorf("%w: expected x", artifact.ErrHashMismatch), exitVerification},
		{"hash compute failure", fmt.Errorf("%w: open", artifact.ErrHashCompute), exitVerification},
		{"bad signature", fmt.Errorf("%w: key", artifact.ErrSignature), exitVerification},
		{"filesystem failure", fmt.Errorf("%w: mkdir", artifact.ErrFilesystem), exitFilesystem},
		{"missing artifact", fmt.Errorf("%w: exe", artifact.ErrArtifactMissing), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeWrappedDeep(t *testing.T) {
	// Sentinel matching must survive multiple wrapping layers.
	err := fmt.Errorf("install: %w", fmt.Errorf("verify: %w", artifact.ErrHashMismatch))
	if got := exitCode(err); got != exitVerification {
		t.Errorf("exitCode() = %d, want %d", got, exitVerification)
	}
}
