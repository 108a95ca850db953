// Package config holds the static installer configuration and validates it
// before any network or disk activity.
//
// # Model
//
// The built-in Default() configuration ships the application name, file
// names, and instructions URL table, but keeps the download URL and expected
// SHA-256 fingerprint as placeholder sentinels. A deployment fills those in
// through an optional sillisetup.lua override file, parsed in a sandboxed
// Lua VM.
//
// # Validation order
//
//  1. The download URL is not the placeholder sentinel.
//  2. The download URL uses the https scheme.
//  3. The expected fingerprint is not the placeholder sentinel and
//     normalizes to exactly 64 hexadecimal digits.
//
// Any failure halts the entire run with a message naming the unconfigured or
// malformed field. The optional instructions URL is validated at selection
// time by ResolveInstructionsURL, not at startup, because the feature is
// opt-in.
package config
