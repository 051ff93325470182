package dotman

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep your dotfiles in one project and link them into place"
	MsgInitShort       = "Turn a directory into a dotman project"
	MsgAddShort        = "Bring a dotfile under management"
	MsgSetupShort      = "Create links for configured dotfiles"
	MsgSyncShort       = "Refresh copy-mode dotfiles"
	MsgEditShort       = "Change which dotfile a target links to"
	MsgStatusShort     = "Show the state of every configured dotfile"
	MsgExampleShort    = "Create an example home directory at a tutorial stage"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Result messages
	MsgExampleCreated = "Created example %s in %s\n  home:    %s\n  project: %s\n"

	// Error messages
	MsgErrInit    = "failed to initialize project: %w"
	MsgErrAdd     = "failed to add dotfile: %w"
	MsgErrSetup   = "failed to set up dotfiles: %w"
	MsgErrSync    = "failed to sync dotfiles: %w"
	MsgErrEdit    = "failed to edit dotfile: %w"
	MsgErrStatus  = "failed to get status: %w"
	MsgErrExample = "failed to create example: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject  = "Project directory (default: current directory)"
	MsgFlagTarget   = "Path inside the project (default: the dotfile's name)"
	MsgFlagMode     = "How the dotfile is kept in place: symlink or copy (default from settings)"
	MsgFlagPull     = "Copy the dotfile over the project target instead of the reverse"
	MsgFlagPlatform = "Only change the dotfile for this platform (linux, mac, windows)"
	MsgFlagFormat   = "Output format: auto, term, text or json (default from settings)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimSpace(msgInitExampleRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimSpace(msgAddExampleRaw)

	//go:embed msgs/setup-long.txt
	msgSetupLongRaw string
	MsgSetupLong    = strings.TrimSpace(msgSetupLongRaw)

	//go:embed msgs/setup-example.txt
	msgSetupExampleRaw string
	MsgSetupExample    = strings.TrimSpace(msgSetupExampleRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimSpace(msgSyncExampleRaw)

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)

	//go:embed msgs/edit-example.txt
	msgEditExampleRaw string
	MsgEditExample    = strings.TrimSpace(msgEditExampleRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimSpace(msgStatusExampleRaw)

	//go:embed msgs/example-long.txt
	msgExampleLongRaw string
	MsgExampleLong    = strings.TrimSpace(msgExampleLongRaw)

	//go:embed msgs/example-example.txt
	msgExampleExampleRaw string
	MsgExampleExample    = strings.TrimSpace(msgExampleExampleRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
