package scaffold

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/exec"
	"github.com/arthur-debert/iacinit/pkg/templates"
)

// Step names
const (
	StepGit     = "git"
	StepInstall = "install"
)

type command struct {
	name    string
	args    []string
	timeout time.Duration
}

func (c command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// runSteps runs git then install. Only an interrupted context stops the
// sequence; a failed step is recorded and the next one still runs. generated
// lists the project-relative paths an initial commit may include.
func (s *Scaffolder) runSteps(ctx context.Context, set *templates.Set, dir string, generated []string, opts Options) ([]StepResult, error) {
	var steps []StepResult

	git, err := s.gitStep(ctx, dir, generated, opts)
	steps = append(steps, git)
	if err != nil {
		return steps, err
	}

	install, err := s.installStep(ctx, set, dir, opts)
	steps = append(steps, install)
	return steps, err
}

func (s *Scaffolder) gitStep(ctx context.Context, dir string, generated []string, opts Options) (StepResult, error) {
	cfg := s.cfg.Git
	switch {
	case opts.NoGit:
		return skipped(StepGit, "--no-git"), nil
	case !cfg.Enabled:
		return skipped(StepGit, "disabled in config"), nil
	}

	initArgs := []string{"init"}
	if cfg.DefaultBranch != "" {
		initArgs = append(initArgs, "-b", cfg.DefaultBranch)
	}
	cmds := []command{{name: "git", args: initArgs}}
	// files already in a --force target stay out of the commit
	if cfg.InitialCommit {
		cmds = append(cmds,
			command{name: "git", args: append([]string{"add", "--"}, generated...)},
			command{name: "git", args: []string{"commit", "-m", cfg.CommitMessage}},
		)
	}

	return s.runStep(ctx, StepGit, dir, opts.DryRun, cmds)
}

func (s *Scaffolder) installStep(ctx context.Context, set *templates.Set, dir string, opts Options) (StepResult, error) {
	switch {
	case set.Install == nil:
		return skipped(StepInstall, "template has no install command"), nil
	case opts.NoInstall:
		return skipped(StepInstall, "--no-install"), nil
	case !s.cfg.Install.Enabled:
		return skipped(StepInstall, "disabled in config"), nil
	}

	cmd := command{name: set.Install.Command, args: set.Install.Args, timeout: s.cfg.Install.Timeout}
	return s.runStep(ctx, StepInstall, dir, opts.DryRun, []command{cmd})
}

func skipped(name, reason string) StepResult {
	return StepResult{Name: name, Status: StepSkipped, Reason: reason}
}

// runStep runs cmds in order in dir, stopping at the first failure. All
// commands of a step share one binary, checked on PATH up front.
func (s *Scaffolder) runStep(ctx context.Context, name, dir string, dryRun bool, cmds []command) (StepResult, error) {
	step := StepResult{Name: name}
	for _, c := range cmds {
		step.Commands = append(step.Commands, c.String())
	}

	if _, err := s.runner.LookPath(cmds[0].name); err != nil {
		step.Status = StepSkipped
		step.Reason = fmt.Sprintf("%s not found on PATH", cmds[0].name)
		s.logger.Warn().Str("step", name).Str("command", cmds[0].name).Msg("Command not found, skipping step")
		return step, nil
	}

	if dryRun {
		step.Status = StepPlanned
		return step, nil
	}

	start := time.Now()

	for _, c := range cmds {
		res, err := s.runner.Run(ctx, c.name, c.args, exec.RunOpts{Dir: dir, Timeout: c.timeout})
		step.ExitCode = res.ExitCode
		step.Duration = time.Since(start)

		if err != nil {
			step.Status = StepFailed
			step.Reason = err.Error()
			if ctx.Err() != nil {
				return step, errors.Wrapf(err, errors.ErrCommandFailed, "%s step interrupted", name)
			}
			s.logger.Error().Err(err).Str("step", name).Str("command", c.String()).Msg("Step failed to run")
			return step, nil
		}

		if res.ExitCode != 0 {
			step.Status = StepFailed
			step.Stderr = strings.TrimSpace(res.Stderr)
			step.Reason = fmt.Sprintf("%s exited with code %d", c, res.ExitCode)
			if res.ExitCode == exec.ExitTimeout && c.timeout > 0 {
				step.Reason = fmt.Sprintf("%s timed out after %s", c, c.timeout)
			}
			s.logger.Error().
				Str("step", name).
				Str("command", c.String()).
				Int("exit_code", res.ExitCode).
				Str("stderr", step.Stderr).
				Msg("Step failed")
			return step, nil
		}
	}

	step.Status = StepSucceeded
	s.logger.Info().Str("step", name).Dur("duration", step.Duration).Msg("Step completed")
	return step, nil
}
