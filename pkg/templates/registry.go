package templates

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/logging"
)

//go:embed all:builtin
var builtinFS embed.FS

// Builtin returns the embedded template sets, one directory per set
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}

// Registry holds the template sets available to `iacinit new`
type Registry struct {
	sets map[string]*Set
}

// NewRegistry loads the built-in sets and then each directory in dirs, in
// order. Missing directories are skipped; an invalid user set is logged and
// skipped so one broken directory does not hide the others.
func NewRegistry(dirs ...string) (*Registry, error) {
	logger := logging.GetLogger("templates")
	r := &Registry{sets: make(map[string]*Set)}

	builtin, err := loadAll(Builtin(), SourceBuiltin, false)
	if err != nil {
		return nil, err
	}
	for _, s := range builtin {
		r.sets[s.Name] = s
	}

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			logger.Debug().Str("dir", dir).Msg("Template directory not found, skipping")
			continue
		}

		sets, err := loadAll(os.DirFS(dir), dir, true)
		if err != nil {
			return nil, err
		}
		for _, s := range sets {
			if prev, ok := r.sets[s.Name]; ok {
				logger.Debug().
					Str("template", s.Name).
					Str("source", s.Source).
					Str("shadowed", prev.Source).
					Msg("Template set shadows an earlier one")
			}
			r.sets[s.Name] = s
		}
	}

	logger.Debug().Int("count", len(r.sets)).Msg("Template registry loaded")
	return r, nil
}

// loadAll loads every immediate subdirectory of root that has a manifest
func loadAll(root fs.FS, source string, skipInvalid bool) ([]*Set, error) {
	logger := logging.GetLogger("templates")

	entries, err := fs.ReadDir(root, ".")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read template directory %s", source)
	}

	var sets []*Set
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := fs.Stat(root, filepath.ToSlash(filepath.Join(entry.Name(), ManifestFile))); err != nil {
			continue
		}

		sub, err := fs.Sub(root, entry.Name())
		if err != nil {
			return nil, err
		}

		setSource := source
		if source != SourceBuiltin {
			setSource = filepath.Join(source, entry.Name())
		}

		s, err := Load(sub, setSource)
		if err != nil {
			if skipInvalid {
				logger.Warn().Err(err).Str("dir", setSource).Msg("Skipping invalid template set")
				continue
			}
			return nil, err
		}
		if s.Name != entry.Name() {
			err := errors.Newf(errors.ErrTemplateInvalid, "template set in %s is named %q", entry.Name(), s.Name)
			if skipInvalid {
				logger.Warn().Err(err).Str("dir", setSource).Msg("Skipping invalid template set")
				continue
			}
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// Get returns the named template set
func (r *Registry) Get(name string) (*Set, error) {
	s, ok := r.sets[name]
	if !ok {
		return nil, errors.Newf(errors.ErrTemplateNotFound, "unknown template %q", name).
			WithDetail("available", r.Names())
	}
	return s, nil
}

// List returns all template sets sorted by name
func (r *Registry) List() []*Set {
	sets := make([]*Set, 0, len(r.sets))
	for _, s := range r.sets {
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets
}

// Names returns the sorted template set names
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
