package cmd

import "strings"

// isDBLockError returns true if the error chain contains a bbolt lock
// timeout. bbolt reports "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// diagnoseDBLock returns actionable guidance when the database cannot be
// opened because another process holds the lock — usually a quotegen watch
// left running in another terminal.
func diagnoseDBLock() string {
	return "database is locked by another process\n" +
		"  → a 'quotegen watch' may be running in another terminal\n" +
		"  → find the process:  ps aux | grep quotegen\n" +
		"  → stop it, then retry your command"
}
