package view

import (
	"testing"

	"github.com/arthur-debert/iacinit/pkg/scaffold"
	"github.com/arthur-debert/iacinit/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTree(t *testing.T) {
	lines := FileTree([]string{
		"main.tf",
		"modules/network/main.tf",
		".gitignore",
		"modules/network/outputs.tf",
		"modules/app/main.tf",
		"scripts/plan.sh",
	})

	assert.Equal(t, []TreeLine{
		{Level: 0, Name: ".gitignore"},
		{Level: 0, Name: "main.tf"},
		{Level: 0, Name: "modules/", Dir: true},
		{Level: 1, Name: "app/", Dir: true},
		{Level: 2, Name: "main.tf"},
		{Level: 1, Name: "network/", Dir: true},
		{Level: 2, Name: "main.tf"},
		{Level: 2, Name: "outputs.tf"},
		{Level: 0, Name: "scripts/", Dir: true},
		{Level: 1, Name: "plan.sh"},
	}, lines)
}

func TestStepDetail(t *testing.T) {
	cmds := []string{"git init", "git add -A"}

	assert.Equal(t, "git init && git add -A", StepDetail(scaffold.StepResult{Status: scaffold.StepSucceeded, Commands: cmds}))
	assert.Equal(t, "would run: git init && git add -A", StepDetail(scaffold.StepResult{Status: scaffold.StepPlanned, Commands: cmds}))
	assert.Equal(t, "skipped: --no-git", StepDetail(scaffold.StepResult{Status: scaffold.StepSkipped, Reason: "--no-git"}))
	assert.Equal(t, "boom", StepDetail(scaffold.StepResult{Status: scaffold.StepFailed, Reason: "boom"}))
}

func TestNewTemplateList(t *testing.T) {
	registry, err := templates.NewRegistry()
	require.NoError(t, err)

	list, err := NewTemplateList(registry.List())
	require.NoError(t, err)
	require.Len(t, list.Templates, 3)

	byName := map[string]Template{}
	for _, tpl := range list.Templates {
		byName[tpl.Name] = tpl
	}
	assert.Equal(t, "terraform init -backend=false", byName["terraform"].Install)
	assert.Empty(t, byName["terragrunt"].Install)
	assert.Equal(t, "builtin", byName["terragrunt"].Source)
	assert.Contains(t, byName["terraform"].Placeholders, "projectName")
	assert.Contains(t, byName["terraform"].Placeholders, "terraform_version")
}
