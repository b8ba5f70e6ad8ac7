package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Overrides(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	stateDir := t.TempDir()

	t.Setenv(EnvConfigDir, configDir)
	t.Setenv(EnvDataDir, dataDir)
	t.Setenv(EnvStateHome, stateDir)

	p := New()

	assert.Equal(t, configDir, p.ConfigDir())
	assert.Equal(t, filepath.Join(configDir, "config.toml"), p.ConfigFile())
	assert.Equal(t, filepath.Join(dataDir, "templates"), p.UserTemplatesDir())
	assert.Equal(t, filepath.Join(stateDir, "iacinit", "iacinit.log"), p.LogFilePath())
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvDataDir, "")

	p := New()

	assert.Equal(t, AppDirName, filepath.Base(p.ConfigDir()))
	assert.Equal(t, AppDirName, filepath.Base(p.DataDir()))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde only", "~", home},
		{"tilde prefix", "~/templates", filepath.Join(home, "templates")},
		{"absolute untouched", "/opt/templates", "/opt/templates"},
		{"tilde user untouched", "~other/x", "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
