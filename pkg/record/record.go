// Package record reads and writes the .iacinit.toml file left in every
// generated project.
package record

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/filesystem"
	"github.com/arthur-debert/iacinit/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the record's name inside the project directory
const FileName = paths.RecordFileName

const header = "# Written by iacinit when this project was generated.\n\n"

// Record describes how a project was generated
type Record struct {
	ToolVersion    string            `toml:"tool_version" json:"toolVersion"`
	Template       string            `toml:"template" json:"template"`
	TemplateSource string            `toml:"template_source" json:"templateSource"`
	CreatedAt      time.Time         `toml:"created_at" json:"createdAt"`
	Variables      map[string]string `toml:"variables" json:"variables"`
}

// Path returns the record location for a project directory
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Marshal encodes r as TOML, timestamps in RFC 3339
func Marshal(r Record) ([]byte, error) {
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Second)
	data, err := toml.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode project record")
	}
	return append([]byte(header), data...), nil
}

// Write stores r in dir
func Write(fsys filesystem.FS, dir string, r Record, perm fs.FileMode) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(Path(dir), data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", Path(dir))
	}
	return nil
}

// Read loads the record of the project in dir
func Read(fsys filesystem.FS, dir string) (*Record, error) {
	data, err := fsys.ReadFile(Path(dir))
	if err != nil {
		if exists, _ := filesystem.Exists(fsys, Path(dir)); !exists {
			return nil, errors.Newf(errors.ErrNotFound, "%s is not an iacinit project (no %s)", dir, FileName)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", Path(dir))
	}

	var r Record
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", Path(dir))
	}
	if r.Variables == nil {
		r.Variables = map[string]string{}
	}
	return &r, nil
}
