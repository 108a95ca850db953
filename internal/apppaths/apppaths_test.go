package apppaths

import (
	"path/filepath"
	"testing"
)

func TestEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv(EnvInstallRoot, filepath.Join(tmpDir, "install"))
	t.Setenv(EnvDataRoot, filepath.Join(tmpDir, "appdata"))
	t.Setenv(EnvDocumentsDir, filepath.Join(tmpDir, "docs"))

	tests := []struct {
		name     string
		resolve  func() (string, error)
		expected string
	}{
		{
			name:     "install_root",
			resolve:  InstallRoot,
			expected: filepath.Join(tmpDir, "install"),
		},
		{
			name:     "data_root",
			resolve:  DataRoot,
			expected: filepath.Join(tmpDir, "appdata"),
		},
		{
			name:     "data_dir",
			resolve:  DataDir,
			expected: filepath.Join(tmpDir, "appdata", "data"),
		},
		{
			name:     "database_path",
			resolve:  DatabasePath,
			expected: filepath.Join(tmpDir, "appdata", "data", "silli_reminder.db"),
		},
		{
			name:     "settings_path",
			resolve:  SettingsPath,
			expected: filepath.Join(tmpDir, "appdata", "settings.sillisettings"),
		},
		{
			name:     "documents_dir",
			resolve:  DocumentsDir,
			expected: filepath.Join(tmpDir, "docs"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.resolve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("path mismatch:\ngot:  %s\nwant: %s", got, tt.expected)
			}
		})
	}
}

func TestExePath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvInstallRoot, tmpDir)

	got, err := ExePath("SilliReminder.exe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(tmpDir, "SilliReminder.exe")
	if got != want {
		t.Errorf("ExePath = %s, want %s", got, want)
	}
}

func TestLocalAppDataBase(t *testing.T) {
	tmpDir := t.TempDir()

	// Clear the test overrides so the LOCALAPPDATA base is exercised.
	t.Setenv(EnvInstallRoot, "")
	t.Setenv(EnvDataRoot, "")
	t.Setenv("LOCALAPPDATA", tmpDir)

	installRoot, err := InstallRoot()
	if err != nil {
		t.Fatalf("InstallRoot failed: %v", err)
	}
	if installRoot != filepath.Join(tmpDir, "Programs", AppDirName) {
		t.Errorf("unexpected install root: %s", installRoot)
	}

	dataRoot, err := DataRoot()
	if err != nil {
		t.Fatalf("DataRoot failed: %v", err)
	}
	if dataRoot != filepath.Join(tmpDir, AppDirName) {
		t.Errorf("unexpected data root: %s", dataRoot)
	}
}

func TestSettingsNotUnderDataDir(t *testing.T) {
	t.Setenv(EnvDataRoot, t.TempDir())

	settings, err := SettingsPath()
	if err != nil {
		t.Fatalf("SettingsPath failed: %v", err)
	}

	if filepath.Base(filepath.Dir(settings)) == DataSubdirName {
		t.Errorf("settings file must sit at the data root, not under %s/: %s", DataSubdirName, settings)
	}
}
