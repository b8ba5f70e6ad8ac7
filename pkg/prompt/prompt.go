// Package prompt asks for missing values when iacinit runs in a terminal.
package prompt

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	iacerrors "github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/render"
	"github.com/arthur-debert/iacinit/pkg/templates"
	"github.com/mattn/go-isatty"
)

// InputConfig configures a text input prompt
type InputConfig struct {
	Message  string
	Default  string
	Help     string
	Required bool
}

// Driver abstracts the terminal so callers can be tested without one
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

// IsInteractive reports whether stdin and stdout are terminals
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by survey
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	p := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if err := survey.AskOne(p, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return strings.TrimSpace(out), nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return iacerrors.New(iacerrors.ErrPrompt, "aborted")
	}
	return iacerrors.Wrap(err, iacerrors.ErrPrompt, "prompt failed")
}

// Variables asks for each variable in order and returns the answers
func Variables(ctx context.Context, d Driver, vars []templates.Variable) (render.Vars, error) {
	answers := make(render.Vars, len(vars))
	for _, v := range vars {
		message := v.Name
		if v.Description != "" {
			message = v.Description + " (" + v.Name + ")"
		}
		value, err := d.Input(ctx, InputConfig{
			Message:  message + ":",
			Default:  v.Default,
			Required: v.Required,
		})
		if err != nil {
			return nil, err
		}
		answers[v.Name] = value
	}
	return answers, nil
}

// Description asks for the one-line project description
func Description(ctx context.Context, d Driver, project string) (string, error) {
	return d.Input(ctx, InputConfig{
		Message: "Description:",
		Help:    "One line about " + project + ", used in the README",
	})
}
