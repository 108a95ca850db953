package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Placeholder sentinels. A deployment that still carries one of these values
// is unconfigured and must not open any network connection.
const (
	PlaceholderURL    = "PASTE_DOWNLOAD_URL_HERE"
	PlaceholderSHA256 = "PASTE_SHA256_HERE"
)

var (
	// ErrInvalid marks a configuration that blocks all further action.
	ErrInvalid = errors.New("installer configuration invalid")
	// ErrInsecureURL marks a download URL that is not https.
	ErrInsecureURL = errors.New("insecure download URL")
)

// InstallConfig describes everything the installer needs: where to download
// the application from, the fingerprint it must match, and where artifacts
// end up. It is constructed once at process start and never mutated.
type InstallConfig struct {
	// AppName is the display name of the application.
	AppName string

	// ExeFileName is the destination file name of the executable.
	ExeFileName string

	// ExeURL is the download URL of the application executable. Must be https.
	ExeURL string

	// ExpectedSHA256 is the 64-hex-digit fingerprint the downloaded
	// executable must match. Case-insensitive.
	ExpectedSHA256 string

	// InstructionsFileName is the user-visible destination name of the
	// optional instructions document.
	InstructionsFileName string

	// InstructionsURL is the generic instructions download URL, used when no
	// locale-specific override matches.
	InstructionsURL string

	// InstructionsURLByLocale maps lowercase locale tags ("pl", "en-us") to
	// locale-specific instructions URLs.
	InstructionsURLByLocale map[string]string

	// SignatureURL and PublicKeyPath enable optional detached-signature
	// verification of the executable. Both must be set together; both empty
	// disables the check.
	SignatureURL  string
	PublicKeyPath string
}

// Default returns the built-in configuration. The download URL and expected
// fingerprint ship as placeholders: a deployment fills them in through the
// Lua override file, and validation refuses to run until it does.
func Default() *InstallConfig {
	return &InstallConfig{
		AppName:              "SilliReminder",
		ExeFileName:          "SilliReminder.exe",
		ExeURL:               PlaceholderURL,
		ExpectedSHA256:       PlaceholderSHA256,
		InstructionsFileName: "SilliReminder Manual.pdf",
		InstructionsURL:      "https://downloads.sillireminder.app/manual/SilliReminder-manual-en.pdf",
		InstructionsURLByLocale: map[string]string{
			"pl": "https://downloads.sillireminder.app/manual/SilliReminder-instrukcja-pl.pdf",
		},
	}
}

// Validate checks the configuration before any network or disk activity.
// Checks run in a fixed order and the first failure is returned with the
// offending field named, so a misconfigured deployment never partially
// downloads or installs.
//
// The instructions URL is deliberately not validated here: the feature is
// opt-in, so its URL is checked at selection time by ResolveInstructionsURL.
func (c *InstallConfig) Validate() error {
	if c.ExeURL == "" || c.ExeURL == PlaceholderURL {
		return fmt.Errorf("%w: download URL (exe_url) is not configured", ErrInvalid)
	}
	if err := checkHTTPS(c.ExeURL, "exe_url"); err != nil {
		return err
	}

	if c.ExpectedSHA256 == "" || c.ExpectedSHA256 == PlaceholderSHA256 {
		return fmt.Errorf("%w: expected SHA-256 fingerprint (expected_sha256) is not configured", ErrInvalid)
	}
	if _, err := NormalizeFingerprint(c.ExpectedSHA256); err != nil {
		return fmt.Errorf("%w: expected_sha256: %v", ErrInvalid, err)
	}

	if c.ExeFileName == "" {
		return fmt.Errorf("%w: exe_file_name is empty", ErrInvalid)
	}

	// Signature verification is all-or-nothing.
	if (c.SignatureURL == "") != (c.PublicKeyPath == "") {
		return fmt.Errorf("%w: signature_url and public_key_path must be set together", ErrInvalid)
	}
	if c.SignatureURL != "" {
		if err := checkHTTPS(c.SignatureURL, "signature_url"); err != nil {
			return err
		}
	}

	return nil
}

// ResolveInstructionsURL picks the instructions URL for the given locale:
// exact tag match first, then the language prefix ("pl-PL" falls back to
// "pl"), then the generic URL. The chosen URL is scheme-checked here, at the
// point the optional feature is requested.
func (c *InstallConfig) ResolveInstructionsURL(locale string) (string, error) {
	resolved := c.InstructionsURL

	tag := strings.ToLower(strings.TrimSpace(locale))
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag != "" {
		if u, ok := c.InstructionsURLByLocale[tag]; ok {
			resolved = u
		} else if lang, _, found := strings.Cut(tag, "-"); found {
			if u, ok := c.InstructionsURLByLocale[lang]; ok {
				resolved = u
			}
		}
	}

	if resolved == "" {
		return "", fmt.Errorf("%w: no instructions URL configured", ErrInvalid)
	}
	if err := checkHTTPS(resolved, "instructions_url"); err != nil {
		return "", err
	}

	return resolved, nil
}

// NormalizeFingerprint trims and uppercases a fingerprint and verifies it is
// exactly 64 hexadecimal digits.
func NormalizeFingerprint(fingerprint string) (string, error) {
	f := strings.ToUpper(strings.TrimSpace(fingerprint))
	if len(f) != 64 {
		return "", fmt.Errorf("fingerprint must be 64 hex digits, got %d characters", len(f))
	}
	for _, r := range f {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return "", fmt.Errorf("fingerprint contains non-hex character %q", r)
		}
	}
	return f, nil
}

// checkHTTPS verifies that rawURL parses and uses the https scheme.
func checkHTTPS(rawURL, field string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, field, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: %s must use https, got %q", ErrInsecureURL, field, rawURL)
	}
	return nil
}
