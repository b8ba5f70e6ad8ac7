//go:build !unix

package exec

import "os/exec"

// killProcessGroup is a no-op where process groups are unavailable; the
// runner's WaitDelay still bounds the wait for descendants.
func killProcessGroup(cmd *exec.Cmd) {}
