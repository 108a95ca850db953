package uninstall

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakePrompter struct {
	choice  Choice
	proceed bool
	err     error
	called  bool
}

func (f *fakePrompter) Collect() (Choice, bool, error) {
	f.called = true
	return f.choice, f.proceed, f.err
}

type fakeRemover struct {
	err    error
	called bool
}

func (f *fakeRemover) Name() string {
	return "SilliReminder"
}

func (f *fakeRemover) Remove() error {
	f.called = true
	return f.err
}

// installedLayout builds a full installation under a temp dir and returns
// the resolved paths.
func installedLayout(t *testing.T) Paths {
	t.Helper()

	root := t.TempDir()
	paths := Paths{
		InstallRoot: filepath.Join(root, "Programs", "SilliReminder"),
		DataRoot:    filepath.Join(root, "SilliReminder"),
	}
	paths.ExePath = filepath.Join(paths.InstallRoot, "silli_reminder.exe")
	paths.DataDir = filepath.Join(paths.DataRoot, "data")
	paths.DatabasePath = filepath.Join(paths.DataDir, "silli_reminder.db")
	paths.SettingsPath = filepath.Join(paths.DataRoot, "settings.sillisettings")

	for _, dir := range []string{paths.InstallRoot, paths.DataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	for _, file := range []string{paths.ExePath, paths.DatabasePath, paths.SettingsPath} {
		if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", file, err)
		}
	}

	return paths
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunSilentDefaults(t *testing.T) {
	paths := installedLayout(t)
	prompter := &fakePrompter{}
	remover := &fakeRemover{}
	coord := New(paths, prompter, remover, "silli_reminder.exe", nil)

	res, err := coord.Run(context.Background(), Options{Silent: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if prompter.called {
		t.Error("Prompter should not be consulted in silent mode")
	}
	if res.Artifact != Removed {
		t.Errorf("Artifact = %v, want Removed", res.Artifact)
	}
	if exists(paths.ExePath) {
		t.Error("Executable should be removed")
	}
	if exists(paths.InstallRoot) {
		t.Error("Empty install directory should be removed")
	}

	// Silent defaults keep the user's data.
	if !exists(paths.DatabasePath) {
		t.Error("Database should be kept by default")
	}
	if !exists(paths.SettingsPath) {
		t.Error("Settings should be kept by default")
	}
	if res.Database != AlreadyAbsent || res.Settings != AlreadyAbsent {
		t.Errorf("Optional outcomes = %v/%v, want AlreadyAbsent/AlreadyAbsent", res.Database, res.Settings)
	}

	// Autostart removal is unconditional.
	if !remover.called {
		t.Error("Autostart removal should always run")
	}
	if !res.AutostartRemoved {
		t.Error("AutostartRemoved should be true")
	}

	// Data root still holds files, so it survives.
	if !exists(paths.DataRoot) {
		t.Error("Non-empty data root should survive")
	}
}

func TestRunRemoveEverything(t *testing.T) {
	paths := installedLayout(t)
	remover := &fakeRemover{}
	coord := New(paths, nil, remover, "silli_reminder.exe", nil)

	opts := Options{
		Silent: true,
		Preset: Choice{RemoveDatabase: true, RemoveSettings: true},
	}
	res, err := coord.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Database != Removed || res.Settings != Removed {
		t.Errorf("Optional outcomes = %v/%v, want Removed/Removed", res.Database, res.Settings)
	}
	if exists(paths.DatabasePath) {
		t.Error("Database should be removed")
	}
	if exists(paths.SettingsPath) {
		t.Error("Settings should be removed")
	}
	if exists(paths.DataDir) {
		t.Error("Empty data directory should be removed")
	}
	if exists(paths.DataRoot) {
		t.Error("Empty data root should be removed after full cleanup")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", res.Warnings)
	}
}

func TestRunSettingsOnly(t *testing.T) {
	paths := installedLayout(t)
	coord := New(paths, nil, &fakeRemover{}, "silli_reminder.exe", nil)

	opts := Options{
		Silent: true,
		Preset: Choice{RemoveSettings: true},
	}
	res, err := coord.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Settings != Removed {
		t.Errorf("Settings = %v, want Removed", res.Settings)
	}
	if !exists(paths.DatabasePath) {
		t.Error("Database should survive a settings-only run")
	}
	if !exists(paths.DataRoot) {
		t.Error("Data root still holds the database and should survive")
	}
}

func TestRunInteractiveChoices(t *testing.T) {
	paths := installedLayout(t)
	prompter := &fakePrompter{
		choice:  Choice{RemoveDatabase: true},
		proceed: true,
	}
	coord := New(paths, prompter, &fakeRemover{}, "silli_reminder.exe", nil)

	res, err := coord.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !prompter.called {
		t.Error("Prompter should be consulted in interactive mode")
	}
	if res.Database != Removed {
		t.Errorf("Database = %v, want Removed", res.Database)
	}
	if !exists(paths.SettingsPath) {
		t.Error("Settings should be kept when not chosen")
	}
}

func TestRunCancelled(t *testing.T) {
	paths := installedLayout(t)
	prompter := &fakePrompter{proceed: false}
	remover := &fakeRemover{}
	coord := New(paths, prompter, remover, "silli_reminder.exe", nil)

	res, err := coord.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !res.Cancelled {
		t.Error("Result should be marked cancelled")
	}
	if !exists(paths.ExePath) || !exists(paths.DatabasePath) || !exists(paths.SettingsPath) {
		t.Error("Cancellation must leave all files in place")
	}
	if remover.called {
		t.Error("Cancellation must not touch the autostart registration")
	}
}

func TestRunPrompterError(t *testing.T) {
	paths := installedLayout(t)
	prompter := &fakePrompter{err: errors.New("terminal gone")}
	coord := New(paths, prompter, &fakeRemover{}, "silli_reminder.exe", nil)

	if _, err := coord.Run(context.Background(), Options{}); err == nil {
		t.Fatal("Expected error when choice collection fails")
	}
	if !exists(paths.ExePath) {
		t.Error("A collection failure must leave files in place")
	}
}

func TestRunInteractiveWithoutPrompter(t *testing.T) {
	paths := installedLayout(t)
	coord := New(paths, nil, &fakeRemover{}, "silli_reminder.exe", nil)

	if _, err := coord.Run(context.Background(), Options{}); err == nil {
		t.Fatal("Expected error for interactive run without a prompter")
	}
}

func TestRunIdempotent(t *testing.T) {
	paths := installedLayout(t)
	coord := New(paths, nil, &fakeRemover{}, "silli_reminder.exe", nil)

	opts := Options{
		Silent: true,
		Preset: Choice{RemoveDatabase: true, RemoveSettings: true},
	}
	if _, err := coord.Run(context.Background(), opts); err != nil {
		t.Fatalf("First Run() error = %v", err)
	}

	res, err := coord.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Second Run() error = %v", err)
	}
	if res.Artifact != AlreadyAbsent || res.Database != AlreadyAbsent || res.Settings != AlreadyAbsent {
		t.Errorf("Second run outcomes = %v/%v/%v, want all AlreadyAbsent",
			res.Artifact, res.Database, res.Settings)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Second run should not warn: %v", res.Warnings)
	}
}

func TestRunAutostartFailureIsWarning(t *testing.T) {
	paths := installedLayout(t)
	remover := &fakeRemover{err: errors.New("access denied")}
	coord := New(paths, nil, remover, "silli_reminder.exe", nil)

	res, err := coord.Run(context.Background(), Options{Silent: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.AutostartRemoved {
		t.Error("AutostartRemoved should be false on failure")
	}
	if len(res.Warnings) == 0 {
		t.Fatal("Expected a warning about the autostart registration")
	}
	if res.Artifact != Removed {
		t.Errorf("Artifact = %v, executable removal must still happen", res.Artifact)
	}
}
