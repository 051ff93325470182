package dotman

import (
	"embed"
	"fmt"

	"github.com/AllaVinner/dotman/internal/version"
	"github.com/AllaVinner/dotman/pkg/cobrax/topics"
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/ui/output/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// globals are the values shared by every subcommand
type globals struct {
	verbosity int
	settings  *config.Settings
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "dotman",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(paths.SettingsPath())
			if err != nil {
				return err
			}
			g.settings = settings

			logFile := ""
			if settings.Logging.File {
				logFile = logging.DefaultLogFilePath()
			}
			logging.SetupLoggerWithFile(g.verbosity, logFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if settings.Output.Theme != "" {
				if err := styles.LoadStyles(settings.Output.Theme); err != nil {
					return errors.Wrapf(err, errors.ErrConfigCorrupt, "failed to load theme %s", settings.Output.Theme)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd(g))
	rootCmd.AddCommand(newAddCmd(g))
	rootCmd.AddCommand(newSetupCmd(g))
	rootCmd.AddCommand(newSyncCmd(g))
	rootCmd.AddCommand(newEditCmd(g))
	rootCmd.AddCommand(newStatusCmd(g))
	rootCmd.AddCommand(newExampleCmd(g))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicFiles, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}
