// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/scaffold"
	"github.com/arthur-debert/iacinit/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *scaffold.Result:
		writeResult(&b, v)
	case *view.TemplateList:
		writeTemplates(&b, v)
	case *view.ProjectInfo:
		writeInfo(&b, v)
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

var markers = map[scaffold.StepStatus]string{
	scaffold.StepSucceeded: "[ok]  ",
	scaffold.StepPlanned:   "[plan]",
	scaffold.StepSkipped:   "[skip]",
	scaffold.StepFailed:    "[fail]",
}

func writeResult(b *strings.Builder, res *scaffold.Result) {
	if res.DryRun {
		fmt.Fprintf(b, "Dry run: would create %s from template %s in %s\n\n", res.Name, res.Template, res.Dir)
	} else {
		fmt.Fprintf(b, "Created %s from template %s in %s\n\n", res.Name, res.Template, res.Dir)
	}

	for _, line := range view.FileTree(view.FilePaths(res)) {
		fmt.Fprintf(b, "  %s%s\n", strings.Repeat("  ", line.Level), line.Name)
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\nUnresolved placeholders (rendered empty):\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(b, "  %s: %s\n", w.File, strings.Join(w.Placeholders, ", "))
		}
	}

	b.WriteString("\nSteps:\n")
	for _, s := range res.Steps {
		fmt.Fprintf(b, "  %s %-8s %s\n", markers[s.Status], s.Name, view.StepDetail(s))
		if s.Stderr != "" {
			for _, line := range strings.Split(s.Stderr, "\n") {
				fmt.Fprintf(b, "         %s\n", line)
			}
		}
	}

	if !res.DryRun && !res.Failed() {
		fmt.Fprintf(b, "\nNext: cd %s\n", res.Dir)
	}
}

func writeTemplates(b *strings.Builder, list *view.TemplateList) {
	for i, t := range list.Templates {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s - %s\n", t.Name, t.Description)
		fmt.Fprintf(b, "  source: %s\n", t.Source)
		if t.Install != "" {
			fmt.Fprintf(b, "  install: %s\n", t.Install)
		}
		if len(t.Placeholders) > 0 {
			fmt.Fprintf(b, "  placeholders: %s\n", strings.Join(t.Placeholders, ", "))
		}
		for _, v := range t.Variables {
			fmt.Fprintf(b, "  {{%s}}", v.Name)
			switch {
			case v.Required:
				b.WriteString(" (required)")
			case v.Default != "":
				fmt.Fprintf(b, " = %s", v.Default)
			}
			if v.Description != "" {
				fmt.Fprintf(b, "  %s", v.Description)
			}
			b.WriteString("\n")
		}
	}
}

func writeInfo(b *strings.Builder, info *view.ProjectInfo) {
	rec := info.Record
	fmt.Fprintf(b, "Project:  %s\n", info.Dir)
	fmt.Fprintf(b, "Template: %s (%s)\n", rec.Template, rec.TemplateSource)
	fmt.Fprintf(b, "Created:  %s with iacinit %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05 MST"), rec.ToolVersion)
	if len(rec.Variables) == 0 {
		return
	}
	b.WriteString("Variables:\n")
	for _, k := range view.SortedKeys(rec.Variables) {
		fmt.Fprintf(b, "  %s = %s\n", k, rec.Variables[k])
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	msg := fmt.Sprintf("Error: %v\n", err)
	if available, ok := errors.GetErrorDetails(err)["available"].([]string); ok {
		msg += fmt.Sprintf("Available: %s\n", strings.Join(available, ", "))
	}
	_, werr := io.WriteString(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
