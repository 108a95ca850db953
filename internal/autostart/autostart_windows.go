//go:build windows

package autostart

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// runKeyPath is the per-user Run key the application registers itself under.
const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

type registryRemover struct{}

func newPlatformRemover() Remover {
	return &registryRemover{}
}

func (r *registryRemover) Name() string {
	return RegistrationName
}

// Remove deletes the RegistrationName value from the current user's Run key.
// A missing key or missing value is success: the registration is simply
// already absent.
func (r *registryRemover) Remove() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open Run key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(RegistrationName); err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("delete autostart value %s: %w", RegistrationName, err)
	}

	return nil
}
