// Package artifact downloads, verifies, and installs the SilliReminder
// application artifacts.
//
// # Security Model
//
// The executable is trusted only after verification:
//   - Downloads are restricted to https URLs (enforced by the config layer
//     before this package runs).
//   - The staged executable must match a pinned SHA-256 fingerprint.
//   - Optionally, a detached GPG signature is also required.
//   - On a fingerprint mismatch the staged file is deleted immediately, so
//     the staging path either holds a verified file or does not exist. A
//     crash-and-retry can never install an unverified leftover.
//
// # Architecture
//
//   - Downloader: HTTP download with retry logic, staging a batch of
//     required and optional tasks.
//   - Verifier: SHA-256 fingerprint and optional GPG signature checks.
//   - Installer: gated commit of staged artifacts into the install root.
//
// Each install step is a hard gate on the next; only the optional
// instructions copy is allowed to fail without aborting.
package artifact
