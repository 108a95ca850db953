// Package apppaths resolves the per-user filesystem locations shared by the
// SilliReminder installer and uninstaller: the install root that receives the
// executable, the application-data tree the running app writes to, and the
// documents directory that receives the optional instructions file.
//
// None of these locations are supplied by the end user. They are derived from
// fixed per-user base directories plus fixed relative suffixes, matching what
// the application itself uses at runtime. Every base can be overridden through
// an environment variable so tests never touch the real user profile.
package apppaths

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the directory name used under every per-user base.
const AppDirName = "SilliReminder"

// Fixed relative suffixes beneath the application-data root.
const (
	DataSubdirName   = "data"
	DatabaseFileName = "silli_reminder.db"
	SettingsFileName = "settings.sillisettings"
)

// Environment overrides, primarily for tests.
const (
	EnvInstallRoot  = "SILLISETUP_INSTALL_ROOT"
	EnvDataRoot     = "SILLISETUP_DATA_ROOT"
	EnvDocumentsDir = "SILLISETUP_DOCUMENTS_DIR"
)

// userLocalDataDir returns the per-user local application data base:
// %LOCALAPPDATA% on Windows, ~/.local/share elsewhere.
func userLocalDataDir() (string, error) {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// InstallRoot returns the per-user directory that receives the executable.
func InstallRoot() (string, error) {
	if dir := os.Getenv(EnvInstallRoot); dir != "" {
		return dir, nil
	}

	base, err := userLocalDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "Programs", AppDirName), nil
}

// ExePath returns the final location of the installed executable.
func ExePath(exeFileName string) (string, error) {
	root, err := InstallRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, exeFileName), nil
}

// DataRoot returns the top-level application-data directory the running
// application writes to.
func DataRoot() (string, error) {
	if dir := os.Getenv(EnvDataRoot); dir != "" {
		return dir, nil
	}

	base, err := userLocalDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName), nil
}

// DataDir returns the directory holding the reminder database.
func DataDir() (string, error) {
	root, err := DataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, DataSubdirName), nil
}

// DatabasePath returns the reminder database file path.
func DatabasePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFileName), nil
}

// SettingsPath returns the settings file path. The settings file sits
// directly beneath the data root, not in the data/ subdirectory.
func SettingsPath() (string, error) {
	root, err := DataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, SettingsFileName), nil
}

// DocumentsDir returns the user-visible directory that receives the optional
// instructions file.
func DocumentsDir() (string, error) {
	if dir := os.Getenv(EnvDocumentsDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}
