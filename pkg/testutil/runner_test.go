package testutil

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	iacexec "github.com/arthur-debert/iacinit/pkg/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeRunner(t *testing.T) {
	r := NewFakeRunner()
	r.Missing["npm"] = true
	r.RunFunc = func(call Call) (iacexec.CmdResult, error) {
		if call.Name == "false" {
			return iacexec.CmdResult{ExitCode: 1}, nil
		}
		return iacexec.CmdResult{Stdout: "ok"}, nil
	}

	path, err := r.LookPath("git")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/git", path)

	_, err = r.LookPath("npm")
	assert.True(t, errors.Is(err, exec.ErrNotFound))

	res, err := r.Run(context.Background(), "git", []string{"init"}, iacexec.RunOpts{Dir: "/p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Stdout)

	res, err = r.Run(context.Background(), "false", nil, iacexec.RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)

	assert.Equal(t, []string{"git init", "false"}, r.CommandLines())
	assert.Equal(t, "/p", r.Calls()[0].Opts.Dir)
}

func TestFakeRunner_CanceledContext(t *testing.T) {
	r := NewFakeRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "git", nil, iacexec.RunOpts{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.Calls())
}
