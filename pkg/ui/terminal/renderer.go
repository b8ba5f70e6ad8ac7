// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/scaffold"
	"github.com/arthur-debert/iacinit/pkg/ui/styles"
	"github.com/arthur-debert/iacinit/pkg/ui/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Renderer draws trees and tables with pterm and styles text with lipgloss
type Renderer struct {
	output io.Writer
	styles *styles.Registry
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	st, err := styles.Load(styles.Data(), lipgloss.NewRenderer(w))
	if err != nil {
		st = styles.Default()
	}
	return &Renderer{output: w, styles: st}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder
	var err error

	switch v := result.(type) {
	case *scaffold.Result:
		err = r.writeResult(&b, v)
	case *view.TemplateList:
		err = r.writeTemplates(&b, v)
	case *view.ProjectInfo:
		r.writeInfo(&b, v)
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(r.output, b.String())
	return err
}

var symbols = map[scaffold.StepStatus]struct{ symbol, style string }{
	scaffold.StepSucceeded: {"✓", "Success"},
	scaffold.StepPlanned:   {"•", "Path"},
	scaffold.StepSkipped:   {"-", "Muted"},
	scaffold.StepFailed:    {"✗", "Error"},
}

func (r *Renderer) writeResult(b *strings.Builder, res *scaffold.Result) error {
	title := "Created " + res.Name
	if res.DryRun {
		title = "Dry run: would create " + res.Name
	}
	b.WriteString(r.styles.Render("Header", title))
	b.WriteString("\n")
	fmt.Fprintf(b, "%s %s %s\n\n",
		r.styles.Render("Muted", "template"),
		r.styles.Render("Title", res.Template),
		r.styles.Render("Path", "→ "+res.Dir))

	tree, err := r.fileTree(res)
	if err != nil {
		return err
	}
	b.WriteString(tree)

	if len(res.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Render("Warning", "Unresolved placeholders (rendered empty)"))
		b.WriteString("\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(b, "  %s  %s\n", r.styles.Render("Path", w.File), strings.Join(w.Placeholders, ", "))
		}
	}

	b.WriteString("\n")
	for _, s := range res.Steps {
		sym := symbols[s.Status]
		detail := view.StepDetail(s)
		if s.Status != scaffold.StepFailed {
			detail = r.styles.Render("Muted", detail)
		}
		fmt.Fprintf(b, "%s %s %s\n",
			r.styles.Render(sym.style, sym.symbol),
			r.styles.Render("Name", s.Name),
			detail)
		if s.Stderr != "" {
			for _, line := range strings.Split(s.Stderr, "\n") {
				fmt.Fprintf(b, "    %s\n", r.styles.Render("Muted", line))
			}
		}
	}

	if !res.DryRun && !res.Failed() {
		fmt.Fprintf(b, "\n%s cd %s\n", r.styles.Render("Success", "Next:"), res.Dir)
	}
	return nil
}

func (r *Renderer) fileTree(res *scaffold.Result) (string, error) {
	var list pterm.LeveledList
	for _, line := range view.FileTree(view.FilePaths(res)) {
		list = append(list, pterm.LeveledListItem{Level: line.Level, Text: line.Name})
	}
	if len(list) == 0 {
		return "", nil
	}

	root := putils.TreeFromLeveledList(list)
	root.Text = res.Name + "/"
	return pterm.DefaultTree.WithRoot(root).Srender()
}

func (r *Renderer) writeTemplates(b *strings.Builder, list *view.TemplateList) error {
	data := pterm.TableData{{"Template", "Description", "Variables", "Install"}}
	for _, t := range list.Templates {
		var vars []string
		for _, v := range t.Variables {
			switch {
			case v.Required:
				vars = append(vars, v.Name+"*")
			case v.Default != "":
				vars = append(vars, v.Name+"="+v.Default)
			default:
				vars = append(vars, v.Name)
			}
		}
		name := t.Name
		if t.Source != "builtin" {
			name += " (" + t.Source + ")"
		}
		data = append(data, []string{name, t.Description, strings.Join(vars, ", "), t.Install})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithRowSeparator("-").WithData(data).Srender()
	if err != nil {
		return err
	}
	b.WriteString(table)
	b.WriteString("\n")
	b.WriteString(r.styles.Render("Muted", "* required"))
	b.WriteString("\n")
	return nil
}

func (r *Renderer) writeInfo(b *strings.Builder, info *view.ProjectInfo) {
	rec := info.Record
	row := func(key, value string) {
		fmt.Fprintf(b, "%s %s\n", r.styles.Render("Name", key), value)
	}

	b.WriteString(r.styles.Render("Header", info.Dir))
	b.WriteString("\n")
	row("template", rec.Template+" "+r.styles.Render("Muted", "("+rec.TemplateSource+")"))
	row("created", rec.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	row("iacinit", rec.ToolVersion)
	for _, k := range view.SortedKeys(rec.Variables) {
		row("{{"+k+"}}", rec.Variables[k])
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := r.styles.Render("Error", "Error:") + " " + err.Error() + "\n"
	if available, ok := errors.GetErrorDetails(err)["available"].([]string); ok {
		msg += r.styles.Render("Muted", "available: "+strings.Join(available, ", ")) + "\n"
	}
	_, werr := io.WriteString(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Render("Success", msg))
	return err
}
