package render

import (
	"regexp"

	"github.com/arthur-debert/iacinit/pkg/logging"
	"github.com/rs/zerolog"
)

// Vars maps placeholder identifiers to replacement text
type Vars map[string]string

// placeholderPattern is the on-disk template contract; do not widen it.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Renderer substitutes placeholders and reports unresolved ones to its logger
type Renderer struct {
	logger zerolog.Logger
}

// New creates a Renderer that reports unresolved placeholders to logger
func New(logger zerolog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render renders template with the application logger as diagnostic sink
func Render(template string, vars Vars) string {
	return New(logging.GetLogger("render")).Render(template, vars)
}

// Render replaces every {{identifier}} in template with its value in vars
func (r *Renderer) Render(template string, vars Vars) string {
	return r.RenderReport(template, vars).Output
}

// Report is the outcome of a render, including unresolved occurrences
type Report struct {
	Output string
	// Unresolved lists one entry per unresolved occurrence, in order
	Unresolved []string
}

// RenderReport renders template and also returns the unresolved occurrences,
// each of which has already been logged.
func (r *Renderer) RenderReport(template string, vars Vars) Report {
	var report Report

	report.Output = placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := identifier(token)
		if value, ok := vars[name]; ok {
			return value
		}

		report.Unresolved = append(report.Unresolved, name)
		r.logger.Warn().Str("placeholder", name).Msg("Unresolved placeholder")
		return ""
	})

	return report
}

// Placeholders returns the distinct identifiers referenced by template in
// order of first appearance
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	seen := make(map[string]bool, len(matches))
	var names []string
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// Missing returns the distinct identifiers referenced by template that have
// no binding in vars
func Missing(template string, vars Vars) []string {
	var missing []string
	for _, name := range Placeholders(template) {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// identifier strips the delimiters from a matched token
func identifier(token string) string {
	return token[2 : len(token)-2]
}

// Merge layers variable sets, later sets overriding earlier ones
func Merge(layers ...Vars) Vars {
	merged := make(Vars)
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}
