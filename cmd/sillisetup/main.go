package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sillisoft/sillisetup/internal/artifact"
	"github.com/sillisoft/sillisetup/internal/config"
)

// Version will be set at build time via -ldflags
var Version = "v1.0.0"

// Exit codes for automation callers.
const (
	exitOK            = 0
	exitFailure       = 1
	exitConfigInvalid = 2
	exitNetwork       = 3
	exitVerification  = 4
	exitFilesystem    = 5
)

// exitCode maps an error to the process exit code via its sentinel category.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrInvalid), errors.Is(err, config.ErrInsecureURL):
		return exitConfigInvalid
	case errors.Is(err, artifact.ErrNetwork):
		return exitNetwork
	case errors.Is(err, artifact.ErrHashMismatch),
		errors.Is(err, artifact.ErrHashCompute),
		errors.Is(err, artifact.ErrSignature):
		return exitVerification
	case errors.Is(err, artifact.ErrFilesystem):
		return exitFilesystem
	default:
		return exitFailure
	}
}

func main() {
	// Handle subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("sillisetup %s\n", Version)
			fmt.Println("SilliReminder network installer")
			return
		case "install":
			if err := runInstall(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitCode(err))
			}
			return
		case "uninstall":
			if err := runUninstall(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitCode(err))
			}
			return
		}
	}

	// Default: show help
	fmt.Println("sillisetup - SilliReminder network installer")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sillisetup --version             Show version information")
	fmt.Println("  sillisetup install [options]     Download, verify and install SilliReminder")
	fmt.Println("  sillisetup uninstall [options]   Remove SilliReminder from this user account")
	fmt.Println()
	fmt.Println("Run a subcommand with --help for its options.")
}
