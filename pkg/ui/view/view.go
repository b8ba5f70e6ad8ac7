// Package view holds the display models shared by every renderer.
package view

import (
	"sort"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/record"
	"github.com/arthur-debert/iacinit/pkg/scaffold"
	"github.com/arthur-debert/iacinit/pkg/templates"
)

// Template describes one template set
type Template struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Source      string               `json:"source"`
	Install     string               `json:"install,omitempty"`
	Variables   []templates.Variable `json:"variables"`
	// Placeholders lists every identifier the set's files reference
	Placeholders []string `json:"placeholders"`
}

// TemplateList is the output of `iacinit templates`
type TemplateList struct {
	Templates []Template `json:"templates"`
}

// NewTemplateList builds the view from registry sets. It fails when a
// set's files cannot be read.
func NewTemplateList(sets []*templates.Set) (*TemplateList, error) {
	list := &TemplateList{Templates: make([]Template, 0, len(sets))}
	for _, s := range sets {
		names, err := s.Placeholders()
		if err != nil {
			return nil, err
		}
		t := Template{
			Name:         s.Name,
			Description:  s.Description,
			Source:       s.Source,
			Variables:    s.Variables,
			Placeholders: names,
		}
		if t.Variables == nil {
			t.Variables = []templates.Variable{}
		}
		if t.Placeholders == nil {
			t.Placeholders = []string{}
		}
		if s.Install != nil {
			t.Install = strings.TrimSpace(s.Install.Command + " " + strings.Join(s.Install.Args, " "))
		}
		list.Templates = append(list.Templates, t)
	}
	return list, nil
}

// ProjectInfo is the output of `iacinit info`
type ProjectInfo struct {
	Dir    string         `json:"dir"`
	Record *record.Record `json:"record"`
}

// TreeLine is one row of a file tree
type TreeLine struct {
	Level int
	Name  string
	Dir   bool
}

// FileTree turns slash-separated file paths into tree rows, directories
// first at each position they appear in sorted order
func FileTree(paths []string) []TreeLine {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	var lines []TreeLine
	var open []string
	for _, p := range sorted {
		parts := strings.Split(p, "/")
		dirs := parts[:len(parts)-1]

		common := 0
		for common < len(open) && common < len(dirs) && open[common] == dirs[common] {
			common++
		}
		open = open[:common]
		for i := common; i < len(dirs); i++ {
			lines = append(lines, TreeLine{Level: i, Name: dirs[i] + "/", Dir: true})
			open = append(open, dirs[i])
		}
		lines = append(lines, TreeLine{Level: len(dirs), Name: parts[len(parts)-1]})
	}
	return lines
}

// StepDetail is the one-line description shown next to a step
func StepDetail(s scaffold.StepResult) string {
	commands := strings.Join(s.Commands, " && ")
	switch s.Status {
	case scaffold.StepSucceeded:
		return commands
	case scaffold.StepPlanned:
		return "would run: " + commands
	case scaffold.StepSkipped:
		return "skipped: " + s.Reason
	default:
		return s.Reason
	}
}

// FilePaths returns the generated paths of r
func FilePaths(r *scaffold.Result) []string {
	paths := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// SortedKeys returns the keys of m in order
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
