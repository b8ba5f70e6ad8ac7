package iacinit

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/iacinit/internal/version"
	"github.com/arthur-debert/iacinit/pkg/config"
	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/logging"
	"github.com/arthur-debert/iacinit/pkg/paths"
	"github.com/arthur-debert/iacinit/pkg/prompt"
	"github.com/arthur-debert/iacinit/pkg/record"
	"github.com/arthur-debert/iacinit/pkg/render"
	"github.com/arthur-debert/iacinit/pkg/scaffold"
	"github.com/arthur-debert/iacinit/pkg/ui/view"
	"github.com/spf13/cobra"
)

func newNewCmd(g *globals, d deps) *cobra.Command {
	var (
		opts    scaffold.Options
		vars    []string
		noInput bool
	)

	cmd := &cobra.Command{
		Use:               "new <project-name>",
		Short:             MsgNewShort,
		Long:              MsgNewLong,
		Example:           MsgNewExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			registry, err := g.registry(cfg)
			if err != nil {
				return err
			}
			parsed, err := parseVars(vars)
			if err != nil {
				return err
			}

			opts.Name = args[0]
			opts.Vars = parsed
			opts.DryRun = g.dryRun
			if opts.Dir == "" {
				opts.Dir = opts.Name
			}
			if opts.Dir, err = filepath.Abs(opts.Dir); err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", opts.Dir)
			}

			s := scaffold.New(cfg, registry, d.fs, d.runner, scaffold.WithClock(d.now))

			if !noInput && d.interactive() {
				if err := askMissing(cmd.Context(), s, &opts, d.prompter); err != nil {
					return err
				}
			}

			res, err := s.Create(cmd.Context(), opts)
			if res == nil {
				return err
			}

			r, rerr := g.renderer(cmd.OutOrStdout())
			if rerr != nil {
				return rerr
			}
			if rerr := r.RenderResult(res); rerr != nil {
				return rerr
			}

			if err != nil {
				return err
			}
			if res.Failed() {
				return errors.New(errors.ErrCommandFailed, MsgErrStepsFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", MsgFlagDir)
	cmd.Flags().StringArrayVar(&vars, "var", nil, MsgFlagVar)
	cmd.Flags().StringVar(&opts.Description, "description", "", MsgFlagDescription)
	cmd.Flags().StringVar(&opts.Author, "author", "", MsgFlagAuthor)
	cmd.Flags().BoolVar(&opts.NoGit, "no-git", false, MsgFlagNoGit)
	cmd.Flags().BoolVar(&opts.NoInstall, "no-install", false, MsgFlagNoInstall)
	cmd.Flags().BoolVar(&opts.Force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&noInput, "no-input", false, MsgFlagNoInput)

	_ = cmd.RegisterFlagCompletionFunc("template", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := g.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		registry, err := g.registry(cfg)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return registry.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("dir")

	return cmd
}

// askMissing prompts for required variables that are still empty and for
// the description when nothing provides one
func askMissing(ctx context.Context, s *scaffold.Scaffolder, opts *scaffold.Options, d prompt.Driver) error {
	set, err := s.Template(*opts)
	if err != nil {
		// Create reports it
		return nil
	}

	if s.Variables(set, *opts)[scaffold.VarDescription] == "" {
		desc, err := prompt.Description(ctx, d, opts.Name)
		if err != nil {
			return err
		}
		opts.Description = desc
	}

	answers, err := prompt.Variables(ctx, d, s.MissingRequired(set, *opts))
	if err != nil {
		return err
	}
	opts.Vars = render.Merge(opts.Vars, answers)
	return nil
}

func newTemplatesCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "templates",
		Aliases: []string{"list"},
		Short:   MsgTemplatesShort,
		Long:    MsgTemplatesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			registry, err := g.registry(cfg)
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			list, err := view.NewTemplateList(registry.List())
			if err != nil {
				return err
			}
			return r.RenderResult(list)
		},
	}
}

func newRenderCmd(g *globals, d deps) *cobra.Command {
	var (
		vars   []string
		strict bool
	)

	cmd := &cobra.Command{
		Use:     "render <file>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			parsed, err := parseVars(vars)
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = d.fs.ReadFile(args[0])
			}
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", args[0])
			}

			merged := render.Merge(cfg.Variables, parsed)
			output := render.New(logging.GetLogger("render")).Render(string(data), merged)
			if _, err := io.WriteString(cmd.OutOrStdout(), output); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
			}

			if names := render.Missing(string(data), merged); strict && len(names) > 0 {
				return errors.Newf(errors.ErrVariableRequired, MsgErrUnresolved, strings.Join(names, ", ")).
					WithDetail("variables", names)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, MsgFlagVar)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}

func newInfoCmd(g *globals, d deps) *cobra.Command {
	return &cobra.Command{
		Use:     "info [dir]",
		Short:   MsgInfoShort,
		Long:    MsgInfoLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", dir)
			}

			rec, err := record.Read(d.fs, abs)
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderResult(&view.ProjectInfo{Dir: abs, Record: rec})
		},
	}
}

func newGenConfigCmd(g *globals) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}

			path := paths.New().ConfigFile()
			if err := config.WriteConfigFile(path, force); err != nil {
				return err
			}
			r, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForceConfig)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "iacinit %s\n", version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
