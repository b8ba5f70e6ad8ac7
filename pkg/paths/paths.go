package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for iacinit
	EnvConfigDir = "IACINIT_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for iacinit
	EnvDataDir = "IACINIT_DATA_DIR"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"
)

// Fixed names. These are part of the on-disk contract and not configurable.
const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "iacinit"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// TemplatesDir is the subdirectory of the data dir holding user template sets
	TemplatesDir = "templates"

	// LogFileName is the name of the log file
	LogFileName = "iacinit.log"

	// RecordFileName is the project record written into every new project
	RecordFileName = ".iacinit.toml"
)

// Paths resolves the locations iacinit reads from and writes to
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	DataDir() string
	UserTemplatesDir() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

// New creates a Paths instance, honoring the IACINIT_* overrides
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = ExpandHome(dir)
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	p.stateDir = filepath.Join(stateHome(), AppDirName)

	return p
}

func (p *paths) ConfigDir() string { return p.configDir }

func (p *paths) ConfigFile() string { return filepath.Join(p.configDir, ConfigFileName) }

func (p *paths) DataDir() string { return p.dataDir }

func (p *paths) UserTemplatesDir() string { return filepath.Join(p.dataDir, TemplatesDir) }

func (p *paths) StateDir() string { return p.stateDir }

func (p *paths) LogFilePath() string { return filepath.Join(p.stateDir, LogFileName) }

// stateHome prefers the live environment over the value xdg cached at init
func stateHome() string {
	if dir := os.Getenv(EnvStateHome); dir != "" {
		return dir
	}
	if xdg.StateHome != "" {
		return xdg.StateHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
