package uninstall

import (
	"os"
)

// Outcome classifies a best-effort removal.
type Outcome int

const (
	// Removed means the target existed and was deleted.
	Removed Outcome = iota
	// AlreadyAbsent means there was nothing to remove: the target did not
	// exist, or a directory was left alone because it was not empty.
	AlreadyAbsent
	// FailedWarn means the deletion failed; the caller warns the user and
	// continues with the remaining cleanup steps.
	FailedWarn
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Removed:
		return "Removed"
	case AlreadyAbsent:
		return "AlreadyAbsent"
	case FailedWarn:
		return "FailedWarn"
	default:
		return "Unknown"
	}
}

// RemoveFile deletes a file best-effort: absence is success (idempotent),
// and a failure (for example the file is in use) is reported but never
// escalated.
func RemoveFile(path string) (Outcome, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		return Removed, nil
	case os.IsNotExist(err):
		return AlreadyAbsent, nil
	default:
		return FailedWarn, err
	}
}

// RemoveDirIfEmpty removes a directory only when it holds no entries.
// A non-empty directory is never recursed into and counts as nothing to
// remove.
func RemoveDirIfEmpty(dir string) (Outcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return AlreadyAbsent, nil
		}
		return FailedWarn, err
	}

	if len(entries) > 0 {
		return AlreadyAbsent, nil
	}

	if err := os.Remove(dir); err != nil {
		if os.IsNotExist(err) {
			return AlreadyAbsent, nil
		}
		return FailedWarn, err
	}

	return Removed, nil
}
