package uninstall

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sillisoft/sillisetup/internal/autostart"
)

// Coordinator drives the uninstall state machine:
//
//	Start -> CollectChoices -> RemoveOptionalData -> RemoveFixedRegistration -> Done
//
// Every deletion is best-effort; only choice collection can abort the run,
// and only before anything was deleted.
type Coordinator struct {
	paths      Paths
	prompter   Prompter
	remover    autostart.Remover
	appExeName string
	log        Logger
}

// New creates a coordinator. The prompter may be nil when only silent runs
// are expected; a nil logger falls back to a no-op.
func New(paths Paths, prompter Prompter, remover autostart.Remover, appExeName string, log Logger) *Coordinator {
	if log == nil {
		log = defaultLogger()
	}
	return &Coordinator{
		paths:      paths,
		prompter:   prompter,
		remover:    remover,
		appExeName: appExeName,
		log:        log,
	}
}

// Run executes the uninstall. Cancellation during choice collection returns
// a Result with Cancelled set and no side effects. Deletion failures become
// warnings on the Result; the error return is reserved for being unable to
// collect choices at all.
func (c *Coordinator) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{
		Artifact: AlreadyAbsent,
		Database: AlreadyAbsent,
		Settings: AlreadyAbsent,
	}

	// CollectChoices: skipped entirely in silent mode, both flags default
	// to the preset (false/false unless explicitly set by the caller).
	choice := opts.Preset
	if !opts.Silent {
		if c.prompter == nil {
			return nil, errors.New("interactive uninstall requires a prompter")
		}
		collected, proceed, err := c.prompter.Collect()
		if err != nil {
			return nil, fmt.Errorf("collect choices: %w", err)
		}
		if !proceed {
			res.Cancelled = true
			return res, nil
		}
		choice = collected
	}

	if c.appExeName != "" && appRunning(ctx, c.appExeName) {
		c.warn(res, fmt.Sprintf(
			"%s appears to be running; close it and re-run the uninstaller if any file cannot be removed",
			c.appExeName))
	}

	// The installed executable always goes.
	res.Artifact = c.removeTarget(res, "application executable", c.paths.ExePath)
	if out, err := RemoveDirIfEmpty(c.paths.InstallRoot); out == FailedWarn {
		c.warn(res, fmt.Sprintf("could not remove install directory %s: %v", c.paths.InstallRoot, err))
	}

	// RemoveOptionalData: only what the user chose.
	if choice.RemoveDatabase {
		res.Database = c.removeTarget(res, "reminder database", c.paths.DatabasePath)
		if res.Database == Removed || res.Database == AlreadyAbsent {
			if out, err := RemoveDirIfEmpty(c.paths.DataDir); out == FailedWarn {
				c.warn(res, fmt.Sprintf("could not remove data directory %s: %v", c.paths.DataDir, err))
			}
		}
	}
	if choice.RemoveSettings {
		res.Settings = c.removeTarget(res, "settings file", c.paths.SettingsPath)
	}

	// RemoveFixedRegistration: unconditional, regardless of choices. The
	// application registers autostart itself; its removal is owned here.
	if err := c.remover.Remove(); err != nil {
		c.warn(res, fmt.Sprintf("could not remove autostart registration %s: %v", c.remover.Name(), err))
	} else {
		res.AutostartRemoved = true
		c.log.Debug("autostart registration removed", "name", c.remover.Name())
	}

	// Final sweep: drop the top-level data directory if it is now empty.
	if out, err := RemoveDirIfEmpty(c.paths.DataRoot); out == FailedWarn {
		c.warn(res, fmt.Sprintf("could not remove application data directory %s: %v", c.paths.DataRoot, err))
	}

	return res, nil
}

// removeTarget deletes one file best-effort and records a warning on
// failure, advising the user about a likely file lock.
func (c *Coordinator) removeTarget(res *Result, label, path string) Outcome {
	outcome, err := RemoveFile(path)
	switch outcome {
	case Removed:
		c.log.Info("removed "+label, "path", path)
	case AlreadyAbsent:
		c.log.Debug(label+" already absent", "path", path)
	case FailedWarn:
		c.warn(res, fmt.Sprintf(
			"could not remove %s %s: %v (close %s and retry)",
			label, filepath.Base(path), err, c.appExeName))
	}
	return outcome
}

func (c *Coordinator) warn(res *Result, msg string) {
	res.Warnings = append(res.Warnings, msg)
	c.log.Warn(msg)
}
