package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestEmbeddedStyles(t *testing.T) {
	r, err := Load(embeddedStyles, asciiRenderer())
	require.NoError(t, err)

	for _, name := range []string{"Header", "Title", "Success", "Error", "Warning", "Muted", "Path", "Name"} {
		_, ok := r.styles[name]
		assert.True(t, ok, "missing style %s", name)
	}
}

func TestLoad_UnknownColor(t *testing.T) {
	_, err := Load([]byte("styles:\n  X:\n    foreground: purple\n"), asciiRenderer())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("styles: ["), asciiRenderer())
	assert.Error(t, err)
}

func TestRender_PlainWithoutColors(t *testing.T) {
	r, err := Load(embeddedStyles, asciiRenderer())
	require.NoError(t, err)

	assert.Equal(t, "ok", r.Render("Success", "ok"))
	assert.Equal(t, "as is", r.Render("NoSuchStyle", "as is"))
}
