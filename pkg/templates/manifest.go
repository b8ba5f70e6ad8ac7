package templates

import (
	"regexp"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the manifest inside a template set directory
const ManifestFile = "template.yaml"

var identifierPattern = regexp.MustCompile(`^\w+$`)

// Variable declares a placeholder the template set expects
type Variable struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
}

// Command is an external command run after the files are written
type Command struct {
	Command string   `yaml:"command" json:"command"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty"`
}

// Manifest describes a template set
type Manifest struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Variables   []Variable `yaml:"variables,omitempty" json:"variables,omitempty"`
	Install     *Command   `yaml:"install,omitempty" json:"install,omitempty"`
}

// ParseManifest decodes and validates a manifest
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateInvalid, "failed to parse "+ManifestFile)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for structural problems
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errors.New(errors.ErrTemplateInvalid, "template name cannot be empty")
	}

	seen := make(map[string]bool, len(m.Variables))
	for _, v := range m.Variables {
		if !identifierPattern.MatchString(v.Name) {
			return errors.Newf(errors.ErrTemplateInvalid, "template %s: invalid variable name %q", m.Name, v.Name)
		}
		if seen[v.Name] {
			return errors.Newf(errors.ErrTemplateInvalid, "template %s: duplicate variable %q", m.Name, v.Name)
		}
		seen[v.Name] = true
	}

	if m.Install != nil && m.Install.Command == "" {
		return errors.Newf(errors.ErrTemplateInvalid, "template %s: install.command cannot be empty", m.Name)
	}

	return nil
}
