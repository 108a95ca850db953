package uninstall

// Choice holds the two independent user decisions collected once per
// uninstall run. Both default to false when collection is skipped.
type Choice struct {
	// RemoveDatabase deletes the reminder database file.
	RemoveDatabase bool
	// RemoveSettings deletes the settings file.
	RemoveSettings bool
}

// Prompter collects the uninstall choices from the user. The second return
// value is false when the user cancelled the entire uninstall; cancellation
// happens before any deletion and leaves no side effects.
type Prompter interface {
	Collect() (Choice, bool, error)
}

// Paths lists the uninstall targets, resolved by the caller.
type Paths struct {
	// InstallRoot and ExePath locate the installed executable.
	InstallRoot string
	ExePath     string

	// DataRoot is the top-level per-user application-data directory.
	DataRoot string
	// DataDir is the subdirectory holding the database.
	DataDir string
	// DatabasePath and SettingsPath are the two optional deletion targets.
	DatabasePath string
	SettingsPath string
}

// Options configures a single uninstall run.
type Options struct {
	// Silent skips choice collection entirely; Preset supplies the choices
	// instead (safe default: remove nothing optional).
	Silent bool
	Preset Choice
}

// Result summarizes the run for the caller.
type Result struct {
	// Cancelled is true when the user aborted before any deletion.
	Cancelled bool

	Artifact Outcome
	Database Outcome
	Settings Outcome

	// AutostartRemoved reports whether the fixed registration step
	// completed without error.
	AutostartRemoved bool

	// Warnings collects non-fatal problems surfaced to the user.
	Warnings []string
}

// Logger provides structured logging for uninstall operations.
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
