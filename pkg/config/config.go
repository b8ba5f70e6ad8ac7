package config

import (
	"os"
	"time"
)

// Defaults holds fallback values for `iacinit new`
type Defaults struct {
	Template string `koanf:"template"`
	Author   string `koanf:"author"`
	License  string `koanf:"license"`
}

// Git controls version control initialization of new projects
type Git struct {
	Enabled       bool   `koanf:"enabled"`
	InitialCommit bool   `koanf:"initial_commit"`
	DefaultBranch string `koanf:"default_branch"`
	CommitMessage string `koanf:"commit_message"`
}

// Install controls the dependency install step
type Install struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`
}

// Templates holds template set discovery settings
type Templates struct {
	SearchPaths []string `koanf:"search_paths"`
}

// FilePermissions holds the modes used for generated files and directories
type FilePermissions struct {
	Directory  os.FileMode `koanf:"directory"`
	File       os.FileMode `koanf:"file"`
	Executable os.FileMode `koanf:"executable"`
}

// Config is the main configuration structure
type Config struct {
	Defaults        Defaults          `koanf:"defaults"`
	Git             Git               `koanf:"git"`
	Install         Install           `koanf:"install"`
	Templates       Templates         `koanf:"templates"`
	Variables       map[string]string `koanf:"variables"`
	FilePermissions FilePermissions   `koanf:"file_permissions"`
}

// Default returns the embedded default configuration
func Default() *Config {
	cfg, err := load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		// the embedded file is covered by tests; this only guards a broken build
		return &Config{
			Defaults:  Defaults{Template: "terraform", License: "MIT"},
			Git:       Git{Enabled: true, DefaultBranch: "main", CommitMessage: "Initial commit from iacinit"},
			Install:   Install{Enabled: true, Timeout: 10 * time.Minute},
			Variables: map[string]string{},
			FilePermissions: FilePermissions{
				Directory:  0755,
				File:       0644,
				Executable: 0755,
			},
		}
	}
	return cfg
}
