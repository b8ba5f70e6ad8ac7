package templates

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/render"
)

const (
	// TemplateSuffix marks files that are rendered rather than copied
	TemplateSuffix = ".tmpl"

	filesDir = "files"
)

// SourceBuiltin is the Source of sets embedded in the binary
const SourceBuiltin = "builtin"

// renamed maps stored names to output names for files go:embed and some
// tools treat specially
var renamed = map[string]string{
	"_gitignore":         ".gitignore",
	"_nvmrc":             ".nvmrc",
	"_terraform-version": ".terraform-version",
}

// Set is a loaded template set
type Set struct {
	Manifest
	// Source is "builtin" or the directory the set was loaded from
	Source string

	files fs.FS
}

// File is one entry of a template set
type File struct {
	// Source is the slash-separated path inside files/
	Source string
	// Target is the slash-separated output path, placeholders not yet rendered
	Target string
	// Render is true for .tmpl files
	Render bool
	// Executable is true for shell scripts
	Executable bool
}

// Load reads a template set rooted at fsys
func Load(fsys fs.FS, source string) (*Set, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "template set %s has no %s", source, ManifestFile)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	files, err := fs.Sub(fsys, filesDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "template set %s", manifest.Name)
	}
	if info, err := fs.Stat(files, "."); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrTemplateInvalid, "template set %s has no %s/ directory", manifest.Name, filesDir)
	}

	return &Set{Manifest: *manifest, Source: source, files: files}, nil
}

// Files lists the set's files sorted by source path
func (s *Set) Files() ([]File, error) {
	var files []File

	err := fs.WalkDir(s.files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, newFile(p))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to list files of template %s", s.Name)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Source < files[j].Source })
	return files, nil
}

func newFile(source string) File {
	f := File{Source: source, Target: source}

	dir, base := path.Split(source)
	if strings.HasSuffix(base, TemplateSuffix) && len(base) > len(TemplateSuffix) {
		base = strings.TrimSuffix(base, TemplateSuffix)
		f.Render = true
	}
	if out, ok := renamed[base]; ok {
		base = out
	}
	f.Target = dir + base
	f.Executable = strings.HasSuffix(base, ".sh")

	return f
}

// ReadFile returns the raw content of a set file
func (s *Set) ReadFile(f File) ([]byte, error) {
	data, err := fs.ReadFile(s.files, f.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s from template %s", f.Source, s.Name)
	}
	return data, nil
}

// Defaults returns the declared default values
func (s *Set) Defaults() render.Vars {
	vars := make(render.Vars)
	for _, v := range s.Variables {
		if v.Default != "" {
			vars[v.Name] = v.Default
		}
	}
	return vars
}

// MissingRequired returns the required variables with no value in vars
func (s *Set) MissingRequired(vars render.Vars) []Variable {
	var missing []Variable
	for _, v := range s.Variables {
		if !v.Required {
			continue
		}
		if vars[v.Name] == "" {
			missing = append(missing, v)
		}
	}
	return missing
}

// Placeholders returns every identifier referenced by the set's paths and
// rendered files, in first-appearance order
func (s *Set) Placeholders() ([]string, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	add := func(text string) {
		for _, name := range render.Placeholders(text) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	for _, f := range files {
		add(f.Target)
		if !f.Render {
			continue
		}
		data, err := s.ReadFile(f)
		if err != nil {
			return nil, err
		}
		add(string(data))
	}
	return names, nil
}
