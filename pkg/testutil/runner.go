package testutil

import (
	"context"
	osexec "os/exec"
	"strings"
	"sync"

	"github.com/arthur-debert/iacinit/pkg/exec"
)

// Call is one command seen by a FakeRunner
type Call struct {
	Name string
	Args []string
	Opts exec.RunOpts
}

// String renders the call as a shell-like command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeRunner is an exec.Runner that records calls instead of running them.
type FakeRunner struct {
	// Missing lists binaries LookPath reports as absent
	Missing map[string]bool
	// RunFunc, when set, decides the result of each call
	RunFunc func(call Call) (exec.CmdResult, error)

	mu    sync.Mutex
	calls []Call
}

// NewFakeRunner returns a runner where every binary exists and every
// command exits 0
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Missing: map[string]bool{}}
}

// LookPath reports every binary not listed in Missing as found
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", &osexec.Error{Name: name, Err: osexec.ErrNotFound}
	}
	return "/usr/bin/" + name, nil
}

// Run records the call
func (f *FakeRunner) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	if err := ctx.Err(); err != nil {
		return exec.CmdResult{ExitCode: -1}, err
	}

	call := Call{Name: name, Args: append([]string(nil), args...), Opts: opts}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.RunFunc != nil {
		return f.RunFunc(call)
	}
	return exec.CmdResult{}, nil
}

// Calls returns the recorded calls in order
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CommandLines returns the recorded calls rendered with Call.String
func (f *FakeRunner) CommandLines() []string {
	var lines []string
	for _, c := range f.Calls() {
		lines = append(lines, c.String())
	}
	return lines
}
