package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/errors"
)

// GenerateConfigContent returns the defaults file with every value commented out
func GenerateConfigContent() string {
	return commentOutConfigValues(string(defaultConfig))
}

// WriteConfigFile writes the commented defaults to path. It refuses to
// replace an existing file unless force is set.
func WriteConfigFile(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

// commentOutConfigValues comments out every assignment line, keeping
// comments, blank lines and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
