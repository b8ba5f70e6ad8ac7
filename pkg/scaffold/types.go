package scaffold

import (
	"io/fs"
	"time"

	"github.com/arthur-debert/iacinit/pkg/render"
)

// Options describes one `iacinit new` run
type Options struct {
	Name     string
	Dir      string // defaults to Name, relative to the working directory
	Template string // defaults to config defaults.template
	Vars     render.Vars

	Description string
	Author      string

	Force     bool
	DryRun    bool
	NoGit     bool
	NoInstall bool
}

// FileAction tells how a file was produced
type FileAction string

const (
	ActionRender FileAction = "render"
	ActionCopy   FileAction = "copy"
)

// FileResult is one generated file
type FileResult struct {
	Path   string      `json:"path"` // relative to the project directory
	Source string      `json:"source"`
	Action FileAction  `json:"action"`
	Mode   fs.FileMode `json:"mode"`
}

// Warning lists the placeholders left unresolved in one file. Path
// placeholders are reported against the rendered path.
type Warning struct {
	File         string   `json:"file"`
	Placeholders []string `json:"placeholders"`
}

// StepStatus is the outcome of a post-generation step
type StepStatus string

const (
	StepPlanned   StepStatus = "planned"
	StepSkipped   StepStatus = "skipped"
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
)

// StepResult records one step
type StepResult struct {
	Name     string        `json:"name"`
	Commands []string      `json:"commands,omitempty"`
	Status   StepStatus    `json:"status"`
	Reason   string        `json:"reason,omitempty"`
	ExitCode int           `json:"exitCode"`
	Stderr   string        `json:"stderr,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Result is the outcome of Create
type Result struct {
	Name       string       `json:"name"`
	Dir        string       `json:"dir"`
	Template   string       `json:"template"`
	Variables  render.Vars  `json:"variables"`
	Files      []FileResult `json:"files"`
	Warnings   []Warning    `json:"warnings,omitempty"`
	Steps      []StepResult `json:"steps"`
	RecordPath string       `json:"record,omitempty"`
	DryRun     bool         `json:"dryRun"`
}

// Failed reports whether any step failed
func (r *Result) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			return true
		}
	}
	return false
}
