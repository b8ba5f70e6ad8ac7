package iacinit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Scaffold infrastructure-as-code projects from templates"
	MsgNewShort        = "Create a new project from a template set"
	MsgTemplatesShort  = "List available template sets"
	MsgTemplatesLong   = "List the built-in and user template sets with their variables and install command."
	MsgRenderShort     = "Render a single template file to stdout"
	MsgInfoShort       = "Show how a project was generated"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s"

	// Error messages
	MsgErrStepsFailed   = "project created, but one or more steps failed"
	MsgErrInvalidVar    = "invalid --var %q, expected name=value"
	MsgErrUnresolved    = "unresolved placeholders: %s"
	MsgErrNoCommand     = "no command specified"
	MsgErrUnknownFormat = "invalid --format"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Show what would be done without writing files or running commands"
	MsgFlagConfig      = "Configuration file loaded after the user configuration"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagTemplate    = "Template set to use (default from config, normally terraform)"
	MsgFlagDir         = "Target directory (default ./<project-name>)"
	MsgFlagVar         = "Set a template variable, name=value (repeatable)"
	MsgFlagDescription = "Project description, the {{description}} variable"
	MsgFlagAuthor      = "Project author, the {{author}} variable"
	MsgFlagNoGit       = "Do not initialize a git repository"
	MsgFlagNoInstall   = "Do not run the template's install command"
	MsgFlagForce       = "Write into an existing non-empty directory"
	MsgFlagNoInput     = "Never prompt for missing values"
	MsgFlagStrict      = "Fail when a placeholder has no value"
	MsgFlagWrite       = "Write to the user configuration file instead of stdout"
	MsgFlagForceConfig = "Replace an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/info-long.txt
	msgInfoLongRaw string
	MsgInfoLong    = strings.TrimSpace(msgInfoLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
