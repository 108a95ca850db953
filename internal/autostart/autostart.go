// Package autostart owns removal of the host-level login autostart
// registration for SilliReminder.
//
// The registration itself is written by the running application, not by the
// installer; the uninstaller nevertheless deletes it unconditionally on
// every run. Removing an already-absent registration is success.
package autostart

// RegistrationName is the value name the application writes under the
// per-user Run key.
const RegistrationName = "SilliReminder"

// Remover deletes the autostart registration. Implementations must treat an
// absent registration as success so the uninstaller stays idempotent.
type Remover interface {
	// Remove deletes the registration if present.
	Remove() error
	// Name reports the registration key for user-facing messages.
	Name() string
}

// NewRemover returns the platform remover: the registry implementation on
// Windows, a no-op everywhere else.
func NewRemover() Remover {
	return newPlatformRemover()
}
