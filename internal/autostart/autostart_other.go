//go:build !windows

package autostart

// noopRemover satisfies Remover on platforms without a Run-key equivalent.
// The application only registers autostart on Windows, so there is nothing
// to delete elsewhere.
type noopRemover struct{}

func newPlatformRemover() Remover {
	return &noopRemover{}
}

func (n *noopRemover) Name() string {
	return RegistrationName
}

func (n *noopRemover) Remove() error {
	return nil
}
