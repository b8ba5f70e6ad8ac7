package scaffold

import (
	"testing"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/render"
	"github.com/arthur-debert/iacinit/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	valid := []string{"acme", "Acme-Infra", "net.v2", "a", "0day", "snake_case"}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, ValidateName(name))
		})
	}

	invalid := []string{"", "a/b", `a\b`, "c:", "what?", "a*", `"q"`, "<x>", "a|b", "-lead", ".hidden", "has space"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			err := ValidateName(name)
			assert.True(t, errors.IsErrorCode(err, errors.ErrProjectName), "got %v", err)
		})
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"acme":          "acme",
		"Acme_Infra.v2": "acme-infra-v2",
		"net--core":     "net-core",
		"_x_":           "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestVariables_Layering(t *testing.T) {
	set := testutil.TemplateSet(t, `name: sample
variables:
  - name: region
    default: us-east-1
  - name: environment
    default: dev
  - name: owner
    default: nobody
  - name: description
    default: from template
`, map[string]string{"a": ""})
	f := newFixture(t, set)
	f.cfg.Variables = map[string]string{"environment": "prod", "owner": "config", "projectName": "ignored"}
	f.cfg.Defaults.Author = "Config Author"

	vars := f.s.Variables(set, Options{
		Name: "Acme.Net",
		Vars: render.Vars{"owner": "cli"},
	})

	assert.Equal(t, "us-east-1", vars["region"], "template default")
	assert.Equal(t, "prod", vars["environment"], "config overrides template")
	assert.Equal(t, "cli", vars["owner"], "explicit value wins")
	assert.Equal(t, "Acme.Net", vars[VarProjectName], "built-ins override config")
	assert.Equal(t, "acme-net", vars[VarProjectSlug])
	assert.Equal(t, "Config Author", vars[VarAuthor])
	assert.Equal(t, "MIT", vars[VarLicense])
	assert.Equal(t, "2026", vars[VarYear])
	assert.Equal(t, "sample", vars[VarTemplateName])
	assert.Equal(t, "from template", vars[VarDescription], "empty built-in keeps the lower layer")
}

func TestVariables_EmptyBuiltinsAreDefined(t *testing.T) {
	f := newFixture(t, sampleSet(t))
	f.cfg.Defaults.Author = ""

	vars := f.s.Variables(sampleSet(t), Options{Name: "acme"})

	value, ok := vars[VarAuthor]
	assert.True(t, ok)
	assert.Empty(t, value)
	_, ok = vars[VarDescription]
	assert.True(t, ok)
}
