package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sillisoft/sillisetup/internal/apppaths"
	"github.com/sillisoft/sillisetup/internal/artifact"
	"github.com/sillisoft/sillisetup/internal/config"
)

// InstallFlags holds command-line flags for install
type InstallFlags struct {
	silent           bool
	force            bool
	withInstructions bool
	verbose          bool
	locale           string
	configPath       string
	showHelp         bool
}

// parseInstallFlags parses command-line flags for the install command
func parseInstallFlags(args []string) (*InstallFlags, error) {
	flags := &InstallFlags{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--silent", arg == "-s":
			flags.silent = true
		case arg == "--force", arg == "-f":
			flags.force = true
		case arg == "--with-instructions":
			flags.withInstructions = true
		case arg == "--verbose", arg == "-v":
			flags.verbose = true
		case arg == "--locale":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--locale requires a value")
			}
			i++
			flags.locale = args[i]
		case strings.HasPrefix(arg, "--locale="):
			flags.locale = strings.TrimPrefix(arg, "--locale=")
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--config requires a value")
			}
			i++
			flags.configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			flags.configPath = strings.TrimPrefix(arg, "--config=")
		case arg == "--help", arg == "-h":
			flags.showHelp = true
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
		}
	}

	return flags, nil
}

// printInstallHelp prints help text for the install command
func printInstallHelp() {
	fmt.Println("Usage: sillisetup install [OPTIONS]")
	fmt.Println()
	fmt.Println("Download, verify and install SilliReminder")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --silent, -s          No progress output")
	fmt.Println("  --force, -f           Reinstall even when already installed")
	fmt.Println("  --with-instructions   Also download the instructions document")
	fmt.Println("  --locale <tag>        Locale for the instructions document (default: from environment)")
	fmt.Println("  --config <path>       Lua override file (default: sillisetup.lua next to this binary)")
	fmt.Println("  --verbose, -v         Show debug output")
	fmt.Println("  --help, -h            Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sillisetup install                        # Install with defaults")
	fmt.Println("  sillisetup install --with-instructions    # Also fetch the manual")
	fmt.Println("  sillisetup install --force --silent       # Unattended reinstall")
}

// detectLocale resolves the locale for instructions selection: an explicit
// flag wins, then the usual environment variables. The charset suffix is
// stripped and underscores become hyphens, so "pl_PL.UTF-8" yields "pl-pl".
func detectLocale(flagValue string) string {
	raw := flagValue
	if raw == "" {
		for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
			if v := os.Getenv(env); v != "" {
				raw = v
				break
			}
		}
	}

	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	return strings.ToLower(strings.TrimSpace(raw))
}

// loadConfig resolves the effective configuration: an explicit --config file,
// else the default override file next to the executable, else the built-in
// defaults. The result is validated before anything touches the network.
func loadConfig(flags *InstallFlags, log config.Logger) (*config.InstallConfig, error) {
	parser := config.NewParser(log)

	if flags.configPath != "" {
		return parser.ParseFile(flags.configPath)
	}

	if exePath, err := os.Executable(); err == nil {
		overridePath := filepath.Join(filepath.Dir(exePath), config.DefaultOverrideFileName)
		if _, err := os.Stat(overridePath); err == nil {
			return parser.ParseFile(overridePath)
		}
	}

	return config.Default(), nil
}

// runInstall executes the install command
func runInstall(args []string) error {
	flags, err := parseInstallFlags(args)
	if err != nil {
		return err
	}
	if flags.showHelp {
		printInstallHelp()
		return nil
	}

	log := newLogger(flags.verbose)
	defer log.Sync()

	cfg, err := loadConfig(flags, log)
	if err != nil {
		return fmt.Errorf("%w: %s", config.ErrInvalid, config.FormatError(err, flags.verbose))
	}

	// Validation is the hard gate: nothing downloads, nothing installs,
	// until the configuration is complete and secure.
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	installRoot, err := apppaths.InstallRoot()
	if err != nil {
		return fmt.Errorf("%w: %v", artifact.ErrFilesystem, err)
	}
	documentsDir, err := apppaths.DocumentsDir()
	if err != nil {
		return fmt.Errorf("%w: %v", artifact.ErrFilesystem, err)
	}

	installer := artifact.NewInstaller(cfg, installRoot, documentsDir, log)

	installed, err := installer.IsInstalled()
	if err != nil {
		return err
	}
	if installed && !flags.force {
		if !flags.silent {
			fmt.Printf("✓ %s is already installed at %s\n", cfg.AppName, installer.ExePath())
			fmt.Println("  Use --force to reinstall.")
		}
		return nil
	}

	stagingDir, err := artifact.NewStagingDir()
	if err != nil {
		return err
	}
	defer os.RemoveAll(stagingDir)

	staged := artifact.Staged{
		ExePath: filepath.Join(stagingDir, cfg.ExeFileName),
	}
	tasks := []artifact.Task{
		{
			SourceURL:   cfg.ExeURL,
			StagingPath: staged.ExePath,
			Required:    true,
			Label:       "application executable",
		},
	}

	if cfg.SignatureURL != "" {
		staged.SignaturePath = staged.ExePath + ".sig"
		tasks = append(tasks, artifact.Task{
			SourceURL:   cfg.SignatureURL,
			StagingPath: staged.SignaturePath,
			Required:    true,
			Label:       "detached signature",
		})
	}

	if flags.withInstructions {
		url, err := cfg.ResolveInstructionsURL(detectLocale(flags.locale))
		if err != nil {
			return err
		}
		staged.InstructionsPath = filepath.Join(stagingDir, cfg.InstructionsFileName)
		tasks = append(tasks, artifact.Task{
			SourceURL:   url,
			StagingPath: staged.InstructionsPath,
			Required:    false,
			Label:       "instructions document",
		})
	}

	downloader := artifact.NewDownloader(log)
	downloader.ShowProgress(!flags.silent)

	if err := downloader.DownloadAll(ctx, tasks); err != nil {
		return err
	}

	if err := installer.Install(staged); err != nil {
		return err
	}

	if !flags.silent {
		fmt.Printf("✓ %s installed to %s\n", cfg.AppName, installer.ExePath())
		if flags.withInstructions {
			fmt.Printf("  Instructions: %s\n", filepath.Join(documentsDir, cfg.InstructionsFileName))
		}
	}

	return nil
}
