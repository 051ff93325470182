package dotman

import (
	"fmt"
	"path/filepath"

	"github.com/AllaVinner/dotman/internal/version"
	"github.com/AllaVinner/dotman/pkg/commands/add"
	"github.com/AllaVinner/dotman/pkg/commands/edit"
	"github.com/AllaVinner/dotman/pkg/commands/initialize"
	"github.com/AllaVinner/dotman/pkg/commands/setup"
	"github.com/AllaVinner/dotman/pkg/commands/status"
	"github.com/AllaVinner/dotman/pkg/commands/sync"
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/examples"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
	"github.com/AllaVinner/dotman/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// mode returns the --mode flag, falling back to the settings default
func (g *globals) mode(flag string) types.LinkMode {
	if flag != "" {
		return types.LinkMode(flag)
	}
	return g.settings.LinkMode()
}

// render prints a command result in the requested or configured format
func (g *globals) render(cmd *cobra.Command, format string, result interface{}) error {
	renderer, err := ui.NewRenderer(cmd.OutOrStdout(), format, g.settings.Output.Format)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// projectConfig loads the config of the project named by --project, resolved
// the way the commands resolve it.
func projectConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx, err := paths.Current()
	if err != nil {
		return nil, err
	}
	project, _ := cmd.Flags().GetString("project")
	return config.Load(paths.Resolve(project, ctx), filesystem.NewOS())
}

// targetCompletion completes configured targets of the project in --project
func targetCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := projectConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return cfg.Targets(), cobra.ShellCompDirectiveNoFileComp
}

// platformCompletion completes platform names, marking the ones the target
// in args already has a dotfile for.
func platformCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	configured := map[types.Platform]bool{}
	if len(args) > 0 {
		if cfg, err := projectConfig(cmd); err == nil {
			if ref, ok := cfg.Get(args[0]); ok {
				for _, p := range ref.ConfiguredPlatforms() {
					configured[p] = true
				}
			}
		}
	}
	names := make([]string, 0, len(types.AllPlatforms))
	for _, p := range types.AllPlatforms {
		name := string(p)
		if configured[p] {
			name += "\tconfigured"
		}
		names = append(names, name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newInitCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "init [project]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := ""
			if len(args) == 1 {
				project = args[0]
			}
			log.Info().Str("project", project).Msg("Initializing project")

			result, err := initialize.InitProject(initialize.InitProjectOptions{
				Project: project,
			})
			if err != nil {
				return fmt.Errorf(MsgErrInit, err)
			}
			return g.render(cmd, "", result)
		},
	}
}

func newAddCmd(g *globals) *cobra.Command {
	var project, target, mode string

	cmd := &cobra.Command{
		Use:     "add <dotfile>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().
				Str("dotfile", args[0]).
				Str("project", project).
				Str("target", target).
				Msg("Adding dotfile")

			result, err := add.AddDotfile(add.AddDotfileOptions{
				Dotfile: args[0],
				Target:  target,
				Project: project,
				Mode:    g.mode(mode),
			})
			if err != nil {
				return fmt.Errorf(MsgErrAdd, err)
			}
			return g.render(cmd, "", result)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", MsgFlagProject)
	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	cmd.Flags().StringVar(&mode, "mode", "", MsgFlagMode)
	return cmd
}

func newSetupCmd(g *globals) *cobra.Command {
	var project, mode string

	cmd := &cobra.Command{
		Use:               "setup [target]",
		Short:             MsgSetupShort,
		Long:              MsgSetupLong,
		Example:           MsgSetupExample,
		Args:              cobra.MaximumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: targetCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := setup.SetupOptions{
				Project: project,
				Mode:    g.mode(mode),
			}

			var (
				result *types.SetupResult
				err    error
			)
			if len(args) == 1 {
				opts.Target = args[0]
				result, err = setup.SetupTarget(opts)
			} else {
				result, err = setup.SetupProject(opts)
			}
			if err != nil {
				return fmt.Errorf(MsgErrSetup, err)
			}
			return g.render(cmd, "", result)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", MsgFlagProject)
	cmd.Flags().StringVar(&mode, "mode", "", MsgFlagMode)
	return cmd
}

func newSyncCmd(g *globals) *cobra.Command {
	var (
		project string
		pull    bool
	)

	cmd := &cobra.Command{
		Use:               "sync [target]",
		Short:             MsgSyncShort,
		Long:              MsgSyncLong,
		Example:           MsgSyncExample,
		Args:              cobra.MaximumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: targetCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sync.SyncOptions{
				Project:   project,
				Direction: types.SyncPush,
			}
			if pull {
				opts.Direction = types.SyncPull
			}

			var (
				result *types.SyncResult
				err    error
			)
			if len(args) == 1 {
				opts.Target = args[0]
				result, err = sync.SyncTarget(opts)
			} else {
				result, err = sync.SyncProject(opts)
			}
			if err != nil {
				return fmt.Errorf(MsgErrSync, err)
			}
			return g.render(cmd, "", result)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", MsgFlagProject)
	cmd.Flags().BoolVar(&pull, "pull", false, MsgFlagPull)
	return cmd
}

func newEditCmd(g *globals) *cobra.Command {
	var project, platform string

	cmd := &cobra.Command{
		Use:               "edit <target> <dotfile>",
		Short:             MsgEditShort,
		Long:              MsgEditLong,
		Example:           MsgEditExample,
		Args:              cobra.ExactArgs(2),
		GroupID:           "core",
		ValidArgsFunction: targetCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := edit.EditDotfile(edit.EditOptions{
				Target:   args[0],
				Dotfile:  args[1],
				Project:  project,
				Platform: platform,
			})
			if err != nil {
				return fmt.Errorf(MsgErrEdit, err)
			}
			return g.render(cmd, "", result)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", MsgFlagProject)
	cmd.Flags().StringVar(&platform, "platform", "", MsgFlagPlatform)
	_ = cmd.RegisterFlagCompletionFunc("platform", platformCompletion)
	return cmd
}

func newStatusCmd(g *globals) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status [project]",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := ""
			if len(args) == 1 {
				project = args[0]
			}

			result, err := status.GetStatus(status.StatusOptions{
				Project: project,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}
			return g.render(cmd, format, result)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(ui.Formats(), cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newExampleCmd(g *globals) *cobra.Command {
	stages := make([]string, 0, len(examples.Stages))
	for _, s := range examples.Stages {
		stages = append(stages, string(s))
	}

	return &cobra.Command{
		Use:       "example <stage> [folder]",
		Short:     MsgExampleShort,
		Long:      MsgExampleLong,
		Example:   MsgExampleExample,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: stages,
		GroupID:   "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := examples.ParseStage(args[0])
			if err != nil {
				return err
			}
			folder := "."
			if len(args) == 2 {
				folder = args[1]
			}
			root, err := filepath.Abs(folder)
			if err != nil {
				return err
			}

			p, err := examples.Build(root, stage, nil)
			if err != nil {
				return fmt.Errorf(MsgErrExample, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgExampleCreated, stage, p.Root, p.Home, p.Project)
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd == cmd.Root() {
				return fmt.Errorf("help system not available")
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
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

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
