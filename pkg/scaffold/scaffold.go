package scaffold

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/iacinit/internal/version"
	"github.com/arthur-debert/iacinit/pkg/config"
	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/exec"
	"github.com/arthur-debert/iacinit/pkg/filesystem"
	"github.com/arthur-debert/iacinit/pkg/logging"
	"github.com/arthur-debert/iacinit/pkg/record"
	"github.com/arthur-debert/iacinit/pkg/render"
	"github.com/arthur-debert/iacinit/pkg/templates"
	"github.com/rs/zerolog"
)

// Catalog looks up template sets by name; *templates.Registry implements it
type Catalog interface {
	Get(name string) (*templates.Set, error)
}

// Scaffolder creates projects
type Scaffolder struct {
	cfg      *config.Config
	catalog  Catalog
	fs       filesystem.FS
	runner   exec.Runner
	renderer *render.Renderer
	logger   zerolog.Logger
	now      func() time.Time
}

// Option configures a Scaffolder
type Option func(*Scaffolder)

// WithClock replaces time.Now, used for the year variable and the record
func WithClock(now func() time.Time) Option {
	return func(s *Scaffolder) { s.now = now }
}

// New creates a Scaffolder
func New(cfg *config.Config, catalog Catalog, fsys filesystem.FS, runner exec.Runner, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		cfg:      cfg,
		catalog:  catalog,
		fs:       fsys,
		runner:   runner,
		renderer: render.New(logging.GetLogger("render")),
		logger:   logging.GetLogger("scaffold"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Template resolves the set opts asks for, falling back to the configured
// default template
func (s *Scaffolder) Template(opts Options) (*templates.Set, error) {
	name := opts.Template
	if name == "" {
		name = s.cfg.Defaults.Template
	}
	return s.catalog.Get(name)
}

// Create generates the project described by opts
func (s *Scaffolder) Create(ctx context.Context, opts Options) (*Result, error) {
	done := logging.LogOperationStart(s.logger, "create")
	defer done()

	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}

	set, err := s.Template(opts)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = opts.Name
	}
	dir = filepath.Clean(dir)

	empty, err := filesystem.IsEmptyDir(s.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to inspect %s", dir)
	}
	if !empty {
		if !opts.Force {
			return nil, errors.Newf(errors.ErrProjectExists, "%s already exists and is not empty (use --force to write into it)", dir).
				WithDetail("dir", dir)
		}
		s.logger.Warn().Str("dir", dir).Msg("Writing into a non-empty directory")
	}

	vars := s.Variables(set, opts)
	if missing := set.MissingRequired(vars); len(missing) > 0 {
		return nil, requiredError(missing)
	}

	s.logger.Info().
		Str("project", opts.Name).
		Str("template", set.Name).
		Str("dir", dir).
		Bool("dry_run", opts.DryRun).
		Msg("Creating project")

	planned, warnings, err := s.plan(set, vars)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:      opts.Name,
		Dir:       dir,
		Template:  set.Name,
		Variables: vars,
		Warnings:  warnings,
		DryRun:    opts.DryRun,
	}
	for _, p := range planned {
		result.Files = append(result.Files, p.FileResult)
	}

	if !opts.DryRun {
		if err := s.write(dir, planned); err != nil {
			return result, err
		}

		rec := record.Record{
			ToolVersion:    version.Version,
			Template:       set.Name,
			TemplateSource: set.Source,
			CreatedAt:      s.now(),
			Variables:      vars,
		}
		if err := record.Write(s.fs, dir, rec, s.cfg.FilePermissions.File); err != nil {
			return result, err
		}
		result.RecordPath = record.Path(dir)
	}

	generated := make([]string, 0, len(result.Files)+1)
	for _, f := range result.Files {
		generated = append(generated, f.Path)
	}
	generated = append(generated, record.FileName)

	result.Steps, err = s.runSteps(ctx, set, dir, generated, opts)
	return result, err
}

type plannedFile struct {
	FileResult
	content []byte
}

// plan renders every path and file of set without touching the filesystem
func (s *Scaffolder) plan(set *templates.Set, vars render.Vars) ([]plannedFile, []Warning, error) {
	files, err := set.Files()
	if err != nil {
		return nil, nil, err
	}

	perms := s.cfg.FilePermissions
	seen := make(map[string]string, len(files))
	var planned []plannedFile
	var warnings []Warning

	for _, f := range files {
		pathReport := s.renderer.RenderReport(f.Target, vars)
		// an empty leading segment must not make the path absolute
		rel := path.Clean(strings.TrimLeft(pathReport.Output, "/"))
		if rel == "." || !filepath.IsLocal(filepath.FromSlash(rel)) {
			return nil, nil, errors.Newf(errors.ErrTemplateInvalid,
				"%s renders to %q, which is outside the project directory", f.Source, pathReport.Output)
		}
		if other, ok := seen[rel]; ok {
			return nil, nil, errors.Newf(errors.ErrTemplateInvalid, "%s and %s both render to %s", other, f.Source, rel)
		}
		seen[rel] = f.Source

		data, err := set.ReadFile(f)
		if err != nil {
			return nil, nil, err
		}

		p := plannedFile{
			FileResult: FileResult{Path: rel, Source: f.Source, Action: ActionCopy, Mode: perms.File},
			content:    data,
		}
		if f.Executable {
			p.Mode = perms.Executable
		}

		unresolved := pathReport.Unresolved
		if f.Render {
			report := s.renderer.RenderReport(string(data), vars)
			p.Action = ActionRender
			p.content = []byte(report.Output)
			unresolved = append(unresolved, report.Unresolved...)
		}
		if len(unresolved) > 0 {
			warnings = append(warnings, Warning{File: rel, Placeholders: distinct(unresolved)})
		}

		planned = append(planned, p)
	}
	return planned, warnings, nil
}

func (s *Scaffolder) write(dir string, planned []plannedFile) error {
	perms := s.cfg.FilePermissions

	if err := s.fs.MkdirAll(dir, perms.Directory); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}

	for _, p := range planned {
		target := filepath.Join(dir, filepath.FromSlash(p.Path))
		if err := s.fs.MkdirAll(filepath.Dir(target), perms.Directory); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(target))
		}
		if err := s.fs.WriteFile(target, p.content, p.Mode); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
		}
		s.logger.Debug().
			Str("path", p.Path).
			Str("action", string(p.Action)).
			Msg("Wrote file")
	}
	return nil
}

func distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
