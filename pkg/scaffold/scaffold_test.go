package scaffold

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/arthur-debert/iacinit/pkg/config"
	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/filesystem"
	"github.com/arthur-debert/iacinit/pkg/record"
	"github.com/arthur-debert/iacinit/pkg/render"
	"github.com/arthur-debert/iacinit/pkg/templates"
	"github.com/arthur-debert/iacinit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalog map[string]*templates.Set

func (c catalog) Get(name string) (*templates.Set, error) {
	if s, ok := c[name]; ok {
		return s, nil
	}
	return nil, errors.Newf(errors.ErrTemplateNotFound, "unknown template %q", name)
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

const sampleManifest = `name: sample
description: Sample set
variables:
  - name: region
    default: us-east-1
  - name: environment
    default: dev
install:
  command: make
  args: [deps]
`

func sampleSet(t *testing.T) *templates.Set {
	return testutil.TemplateSet(t, sampleManifest, map[string]string{
		"main.tf.tmpl":                    `provider "aws" { region = "{{region}}" } # {{projectName}}`,
		"LICENSE":                         "Copyright {{year}} verbatim\n",
		"_gitignore":                      ".terraform/\n",
		"scripts/plan.sh":                 "#!/bin/sh\nterraform plan\n",
		"env/{{environment}}.tfvars.tmpl": `environment = "{{environment}}"`,
	})
}

type fixture struct {
	fs     filesystem.FS
	runner *testutil.FakeRunner
	cfg    *config.Config
	s      *Scaffolder
}

func newFixture(t *testing.T, sets ...*templates.Set) *fixture {
	t.Helper()

	c := catalog{}
	for _, set := range sets {
		c[set.Name] = set
	}

	f := &fixture{
		fs:     filesystem.NewMemory(),
		runner: testutil.NewFakeRunner(),
		cfg:    config.Default(),
	}
	f.cfg.Defaults.Template = "sample"
	f.s = New(f.cfg, c, f.fs, f.runner, WithClock(func() time.Time { return fixedNow }))
	return f
}

func TestCreate(t *testing.T) {
	f := newFixture(t, sampleSet(t))

	res, err := f.s.Create(context.Background(), Options{Name: "Acme Infra", Dir: "/work/acme"})
	require.Error(t, err, "spaces are not allowed in names")
	assert.Nil(t, res)

	res, err = f.s.Create(context.Background(), Options{Name: "acme", Dir: "/work/acme"})
	require.NoError(t, err)

	assert.Equal(t, "sample", res.Template)
	assert.Equal(t, "/work/acme", res.Dir)
	assert.Empty(t, res.Warnings)
	assert.False(t, res.Failed())

	testutil.AssertFileContent(t, f.fs, "/work/acme/main.tf", `provider "aws" { region = "us-east-1" } # acme`)
	testutil.AssertFileContent(t, f.fs, "/work/acme/LICENSE", "Copyright {{year}} verbatim\n")
	testutil.AssertFileContent(t, f.fs, "/work/acme/.gitignore", ".terraform/\n")
	testutil.AssertFileContent(t, f.fs, "/work/acme/env/dev.tfvars", `environment = "dev"`)
	testutil.AssertMode(t, f.fs, "/work/acme/scripts/plan.sh", 0755)
	testutil.AssertMode(t, f.fs, "/work/acme/main.tf", 0644)

	var paths []string
	for _, file := range res.Files {
		paths = append(paths, file.Path)
	}
	assert.Equal(t, []string{"LICENSE", ".gitignore", "env/dev.tfvars", "main.tf", "scripts/plan.sh"}, paths)
	assert.Equal(t, ActionCopy, res.Files[0].Action)
	assert.Equal(t, ActionRender, res.Files[3].Action)

	rec, err := record.Read(f.fs, "/work/acme")
	require.NoError(t, err)
	assert.Equal(t, "sample", rec.Template)
	assert.Equal(t, "acme", rec.Variables["projectName"])
	assert.True(t, fixedNow.Equal(rec.CreatedAt))
	assert.Equal(t, record.Path("/work/acme"), res.RecordPath)
}

func TestCreate_DefaultDir(t *testing.T) {
	f := newFixture(t, sampleSet(t))

	res, err := f.s.Create(context.Background(), Options{Name: "acme", NoGit: true, NoInstall: true})
	require.NoError(t, err)

	assert.Equal(t, "acme", res.Dir)
	testutil.AssertFileContent(t, f.fs, "acme/.gitignore", ".terraform/\n")
}

func TestCreate_UnresolvedPlaceholders(t *testing.T) {
	set := testutil.TemplateSet(t, "name: sample\n", map[string]string{
		"main.tf.tmpl":             "owner = {{owner}} {{owner}} {{projectName}} {{team}}",
		"{{component}}/notes.tmpl": "{{projectName}}",
	})
	f := newFixture(t, set)

	res, err := f.s.Create(context.Background(), Options{Name: "acme", Dir: "/p"})
	require.NoError(t, err, "unresolved placeholders never fail a run")

	testutil.AssertFileContent(t, f.fs, "/p/main.tf", "owner =   acme ")
	testutil.AssertFileContent(t, f.fs, "/p/notes", "acme")

	assert.Equal(t, []Warning{
		{File: "main.tf", Placeholders: []string{"owner", "team"}},
		{File: "notes", Placeholders: []string{"component"}},
	}, res.Warnings)
}

func TestCreate_ProjectExists(t *testing.T) {
	f := newFixture(t, sampleSet(t))
	testutil.WriteFile(t, f.fs, "/work/acme/existing.txt", "keep me")

	_, err := f.s.Create(context.Background(), Options{Name: "acme", Dir: "/work/acme"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectExists))
	testutil.AssertNoFile(t, f.fs, "/work/acme/main.tf")

	_, err = f.s.Create(context.Background(), Options{Name: "acme", Dir: "/work/acme", Force: true})
	require.NoError(t, err)
	testutil.AssertFileContent(t, f.fs, "/work/acme/existing.txt", "keep me")
	testutil.AssertFileContent(t, f.fs, "/work/acme/.gitignore", ".terraform/\n")
}

func TestCreate_EmptyExistingDir(t *testing.T) {
	f := newFixture(t, sampleSet(t))
	require.NoError(t, f.fs.MkdirAll("/work/acme", 0755))

	_, err := f.s.Create(context.Background(), Options{Name: "acme", Dir: "/work/acme"})
	assert.NoError(t, err)
}

func TestCreate_UnknownTemplate(t *testing.T) {
	f := newFixture(t, sampleSet(t))

	_, err := f.s.Create(context.Background(), Options{Name: "acme", Template: "pulumi"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestCreate_RequiredVariables(t *testing.T) {
	set := testutil.TemplateSet(t, `name: sample
variables:
  - name: state_bucket
    required: true
  - name: owner
    required: true
`, map[string]string{"root.hcl.tmpl": "bucket = {{state_bucket}}"})
	f := newFixture(t, set)

	_, err := f.s.Create(context.Background(), Options{Name: "acme", Dir: "/p"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVariableRequired))
	assert.Equal(t, []string{"state_bucket", "owner"}, errors.GetErrorDetails(err)["variables"])
	testutil.AssertNoFile(t, f.fs, "/p")

	f.cfg.Variables["owner"] = "platform"
	_, err = f.s.Create(context.Background(), Options{
		Name: "acme",
		Dir:  "/p",
		Vars: render.Vars{"state_bucket": "tf-state"},
	})
	require.NoError(t, err)
	testutil.AssertFileContent(t, f.fs, "/p/root.hcl", "bucket = tf-state")
}

func TestCreate_PathOutsideProject(t *testing.T) {
	set := testutil.TemplateSet(t, "name: sample\n", map[string]string{
		"{{environment}}/main.tf": "",
	})
	f := newFixture(t, set)

	_, err := f.s.Create(context.Background(), Options{
		Name: "acme",
		Dir:  "/work/acme",
		Vars: render.Vars{"environment": "../../etc"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
	testutil.AssertNoFile(t, f.fs, "/work/acme")
	testutil.AssertNoFile(t, f.fs, "/etc/main.tf")
}

func TestCreate_DuplicateTargets(t *testing.T) {
	set := testutil.TemplateSet(t, "name: sample\n", map[string]string{
		"main.tf":      "copied",
		"main.tf.tmpl": "rendered",
	})
	f := newFixture(t, set)

	_, err := f.s.Create(context.Background(), Options{Name: "acme", Dir: "/p"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
}

func TestCreate_DryRun(t *testing.T) {
	f := newFixture(t, sampleSet(t))

	res, err := f.s.Create(context.Background(), Options{Name: "acme", Dir: "/work/acme", DryRun: true})
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Len(t, res.Files, 5)
	assert.Empty(t, res.RecordPath)
	testutil.AssertNoFile(t, f.fs, "/work/acme")
	assert.Empty(t, f.runner.Calls())

	require.Len(t, res.Steps, 2)
	assert.Equal(t, StepPlanned, res.Steps[0].Status)
	assert.Equal(t, []string{"git init -b main"}, res.Steps[0].Commands)
	assert.Equal(t, StepPlanned, res.Steps[1].Status)
	assert.Equal(t, []string{"make deps"}, res.Steps[1].Commands)
}

func TestCreate_FilePermissionsFromConfig(t *testing.T) {
	f := newFixture(t, sampleSet(t))
	f.cfg.FilePermissions = config.FilePermissions{Directory: 0700, File: 0600, Executable: 0700}

	_, err := f.s.Create(context.Background(), Options{Name: "acme", Dir: "/p"})
	require.NoError(t, err)

	testutil.AssertMode(t, f.fs, "/p/main.tf", 0600)
	testutil.AssertMode(t, f.fs, "/p/scripts/plan.sh", 0700)
	testutil.AssertMode(t, f.fs, "/p/scripts", os.FileMode(0700))
}

func TestCreate_BuiltinTerraform(t *testing.T) {
	registry, err := templates.NewRegistry()
	require.NoError(t, err)

	fsys := filesystem.NewMemory()
	cfg := config.Default()
	s := New(cfg, registry, fsys, testutil.NewFakeRunner(), WithClock(func() time.Time { return fixedNow }))

	res, err := s.Create(context.Background(), Options{
		Name:        "acme-network",
		Dir:         "/src/acme-network",
		Template:    "terraform",
		Description: "Shared network",
		Author:      "Platform Team",
		Vars:        render.Vars{"environment": "staging"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	testutil.AssertFileContent(t, fsys, "/src/acme-network/.terraform-version", "1.6.0\n")
	testutil.AssertMode(t, fsys, "/src/acme-network/scripts/plan.sh", 0755)
	testutil.AssertNoFile(t, fsys, "/src/acme-network/_gitignore")

	readme := testutil.ReadFile(t, fsys, "/src/acme-network/README.md")
	assert.Contains(t, readme, "# acme-network")
	assert.Contains(t, readme, "Shared network")
	assert.Contains(t, readme, "Maintained by Platform Team.")
	assert.Contains(t, readme, "on 2026.")

	_, err = fsys.Stat("/src/acme-network/examples/staging.tfvars")
	assert.NoError(t, err)
}
