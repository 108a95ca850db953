package uninstall

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// appRunning reports whether a process with the given executable name is
// currently running. Purely advisory: enumeration failures count as not
// running so the uninstall never blocks on it.
func appRunning(ctx context.Context, exeName string) bool {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if strings.EqualFold(name, exeName) {
			return true
		}
	}

	return false
}
