package scaffold

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/render"
	"github.com/arthur-debert/iacinit/pkg/templates"
)

// Built-in variable names
const (
	VarProjectName  = "projectName"
	VarProjectSlug  = "projectSlug"
	VarDescription  = "description"
	VarAuthor       = "author"
	VarLicense      = "license"
	VarYear         = "year"
	VarTemplateName = "templateName"
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
)

// ValidateName checks that name can be used as a directory name on every
// platform iacinit supports
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrProjectName, "project name is required")
	}
	if strings.ContainsAny(name, `/\:*?"<>|`) {
		return errors.Newf(errors.ErrProjectName, "project name %q contains a path separator or reserved character", name)
	}
	if !namePattern.MatchString(name) {
		return errors.Newf(errors.ErrProjectName,
			"project name %q must start with a letter or digit and contain only letters, digits, '.', '_' or '-'", name)
	}
	return nil
}

// Slug lowercases name and collapses everything outside [a-z0-9] into
// single dashes
func Slug(name string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// Variables builds the variable set for opts, later layers overriding
// earlier ones: template defaults, config variables, built-ins, opts.Vars.
// An empty built-in does not hide a value from a lower layer, but is still
// defined so templates never see it unresolved.
func (s *Scaffolder) Variables(set *templates.Set, opts Options) render.Vars {
	author := opts.Author
	if author == "" {
		author = s.cfg.Defaults.Author
	}

	builtins := render.Vars{
		VarProjectName:  opts.Name,
		VarProjectSlug:  Slug(opts.Name),
		VarDescription:  opts.Description,
		VarAuthor:       author,
		VarLicense:      s.cfg.Defaults.License,
		VarYear:         strconv.Itoa(s.now().Year()),
		VarTemplateName: set.Name,
	}
	lower := render.Merge(set.Defaults(), s.cfg.Variables)
	for k, v := range builtins {
		if _, ok := lower[k]; ok && v == "" {
			delete(builtins, k)
		}
	}

	return render.Merge(lower, builtins, opts.Vars)
}

// MissingRequired returns the template's required variables that opts
// leaves without a value
func (s *Scaffolder) MissingRequired(set *templates.Set, opts Options) []templates.Variable {
	return set.MissingRequired(s.Variables(set, opts))
}

func requiredError(missing []templates.Variable) error {
	names := make([]string, 0, len(missing))
	for _, v := range missing {
		names = append(names, v.Name)
	}
	return errors.Newf(errors.ErrVariableRequired, "missing required variables: %s (set them with --var name=value)",
		strings.Join(names, ", ")).
		WithDetail("variables", names)
}
