package iacinit

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/iacinit/internal/version"
	"github.com/arthur-debert/iacinit/pkg/cobrax/topics"
	"github.com/arthur-debert/iacinit/pkg/config"
	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/exec"
	"github.com/arthur-debert/iacinit/pkg/filesystem"
	"github.com/arthur-debert/iacinit/pkg/logging"
	"github.com/arthur-debert/iacinit/pkg/paths"
	"github.com/arthur-debert/iacinit/pkg/prompt"
	"github.com/arthur-debert/iacinit/pkg/templates"
	"github.com/arthur-debert/iacinit/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// deps are the side-effecting collaborators of the commands. Tests swap
// them for in-memory versions.
type deps struct {
	fs          filesystem.FS
	runner      exec.Runner
	prompter    prompt.Driver
	interactive func() bool
	now         func() time.Time
}

func defaultDeps() deps {
	return deps{
		fs:          filesystem.NewOS(),
		runner:      exec.NewOSRunner(),
		prompter:    prompt.NewSurveyDriver(),
		interactive: prompt.IsInteractive,
		now:         time.Now,
	}
}

// globals holds the values of the persistent flags
type globals struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string
}

func (g *globals) loadConfig() (*config.Config, error) {
	return config.Load(config.LoadOptions{ConfigFile: g.configFile})
}

// registry returns the built-in sets shadowed by the user templates
// directory and then by the configured search paths
func (g *globals) registry(cfg *config.Config) (*templates.Registry, error) {
	dirs := append([]string{paths.New().UserTemplatesDir()}, cfg.Templates.SearchPaths...)
	return templates.NewRegistry(dirs...)
}

func (g *globals) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrUnknownFormat)
	}
	return ui.NewRenderer(format, w)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd(defaultDeps())
	return cmd
}

func newRootCmd(d deps) (*cobra.Command, *globals) {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "iacinit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newNewCmd(g, d))
	rootCmd.AddCommand(newTemplatesCmd(g))
	rootCmd.AddCommand(newRenderCmd(g, d))
	rootCmd.AddCommand(newInfoCmd(g, d))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd, g
}

// Execute runs the command line and returns the process exit code.
// Errors are rendered to stderr in the selected output format.
func Execute(ctx context.Context, args []string) int {
	return execute(ctx, defaultDeps(), args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, d deps, args []string, stdout, stderr io.Writer) int {
	rootCmd, g := newRootCmd(d)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	r, rerr := g.renderer(stderr)
	if rerr != nil {
		r, _ = ui.NewRenderer(ui.FormatText, stderr)
	}
	if rerr := r.RenderError(err); rerr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}
