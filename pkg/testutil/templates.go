package testutil

import (
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/iacinit/pkg/templates"
)

// TemplateSet builds a template set from a manifest and a map of file
// paths (relative to files/) to contents.
func TemplateSet(t *testing.T, manifest string, files map[string]string) *templates.Set {
	t.Helper()

	fsys := fstest.MapFS{
		templates.ManifestFile: {Data: []byte(manifest)},
	}
	for name, content := range files {
		fsys["files/"+name] = &fstest.MapFile{Data: []byte(content)}
	}

	set, err := templates.Load(fsys, "test")
	if err != nil {
		t.Fatalf("Failed to load template set: %v", err)
	}
	return set
}
