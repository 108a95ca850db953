package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sillisoft/sillisetup/internal/apppaths"
	"github.com/sillisoft/sillisetup/internal/autostart"
	"github.com/sillisoft/sillisetup/internal/config"
	"github.com/sillisoft/sillisetup/internal/uninstall"
)

// UninstallFlags holds command-line flags for uninstall
type UninstallFlags struct {
	silent         bool
	verySilent     bool
	yes            bool
	removeDatabase bool
	removeSettings bool
	verbose        bool
	showHelp       bool
}

// parseUninstallFlags parses command-line flags for the uninstall command
func parseUninstallFlags(args []string) (*UninstallFlags, error) {
	flags := &UninstallFlags{}

	for _, arg := range args {
		switch arg {
		case "--silent", "-s":
			flags.silent = true
		case "--verysilent":
			flags.verySilent = true
		case "--yes", "-y":
			flags.yes = true
		case "--remove-database":
			flags.removeDatabase = true
		case "--remove-settings":
			flags.removeSettings = true
		case "--verbose", "-v":
			flags.verbose = true
		case "--help", "-h":
			flags.showHelp = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
		}
	}

	return flags, nil
}

// nonInteractive reports whether choice prompts are skipped.
func (f *UninstallFlags) nonInteractive() bool {
	return f.silent || f.verySilent || f.yes
}

// quiet reports whether the summary output is suppressed.
func (f *UninstallFlags) quiet() bool {
	return f.verySilent
}

// printUninstallHelp prints help text for the uninstall command
func printUninstallHelp() {
	fmt.Println("Usage: sillisetup uninstall [OPTIONS]")
	fmt.Println()
	fmt.Println("Remove SilliReminder from this user account")
	fmt.Println()
	fmt.Println("The executable and its autostart registration are always removed.")
	fmt.Println("The reminder database and the settings file are kept unless chosen")
	fmt.Println("interactively or preset through flags.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --silent, -s        Skip prompts; keep database and settings unless preset")
	fmt.Println("  --verysilent        Like --silent, and suppress the summary output")
	fmt.Println("  --yes, -y           Skip prompts (alias for --silent)")
	fmt.Println("  --remove-database   Also delete the reminder database")
	fmt.Println("  --remove-settings   Also delete the settings file")
	fmt.Println("  --verbose, -v       Show debug output")
	fmt.Println("  --help, -h          Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sillisetup uninstall                              # Interactive removal")
	fmt.Println("  sillisetup uninstall --silent                     # Keep all user data")
	fmt.Println("  sillisetup uninstall -y --remove-database --remove-settings")
}

// resolvePaths derives all uninstall targets from the per-user directories.
func resolvePaths(exeFileName string) (uninstall.Paths, error) {
	var paths uninstall.Paths
	var err error

	if paths.InstallRoot, err = apppaths.InstallRoot(); err != nil {
		return paths, err
	}
	if paths.ExePath, err = apppaths.ExePath(exeFileName); err != nil {
		return paths, err
	}
	if paths.DataRoot, err = apppaths.DataRoot(); err != nil {
		return paths, err
	}
	if paths.DataDir, err = apppaths.DataDir(); err != nil {
		return paths, err
	}
	if paths.DatabasePath, err = apppaths.DatabasePath(); err != nil {
		return paths, err
	}
	if paths.SettingsPath, err = apppaths.SettingsPath(); err != nil {
		return paths, err
	}

	return paths, nil
}

// runUninstall executes the uninstall command
func runUninstall(args []string) error {
	flags, err := parseUninstallFlags(args)
	if err != nil {
		return err
	}
	if flags.showHelp {
		printUninstallHelp()
		return nil
	}

	log := newLogger(flags.verbose)
	defer log.Sync()

	// Uninstall works on an unconfigured deployment too: only the fixed
	// file names matter, so the defaults are used without validation.
	cfg := config.Default()

	paths, err := resolvePaths(cfg.ExeFileName)
	if err != nil {
		return fmt.Errorf("resolve uninstall targets: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	prompter := &uninstall.TerminalPrompter{In: os.Stdin, Out: os.Stdout}
	coordinator := uninstall.New(paths, prompter, autostart.NewRemover(), cfg.ExeFileName, log)

	opts := uninstall.Options{
		Silent: flags.nonInteractive(),
		Preset: uninstall.Choice{
			RemoveDatabase: flags.removeDatabase,
			RemoveSettings: flags.removeSettings,
		},
	}

	res, err := coordinator.Run(ctx, opts)
	if err != nil {
		return err
	}

	if flags.quiet() {
		return nil
	}

	if res.Cancelled {
		fmt.Println("Uninstall cancelled. Nothing was removed.")
		return nil
	}

	printOutcome("Application executable", res.Artifact)
	printOutcome("Reminder database", res.Database)
	printOutcome("Settings file", res.Settings)
	if res.AutostartRemoved {
		fmt.Println("✓ Autostart registration removed")
	}

	for _, warning := range res.Warnings {
		fmt.Printf("⚠ %s\n", warning)
	}

	fmt.Printf("✓ %s has been uninstalled\n", cfg.AppName)
	return nil
}

// printOutcome prints one summary line for a removal target.
func printOutcome(label string, outcome uninstall.Outcome) {
	switch outcome {
	case uninstall.Removed:
		fmt.Printf("✓ %s removed\n", label)
	case uninstall.AlreadyAbsent:
		fmt.Printf("  %s: nothing to remove\n", label)
	case uninstall.FailedWarn:
		fmt.Printf("⚠ %s could not be removed\n", label)
	}
}
