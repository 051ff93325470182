package initialize

import (
	"github.com/AllaVinner/dotman/pkg/commands/internal"
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// InitProjectOptions defines the options for the InitProject command.
type InitProjectOptions struct {
	// Project is the directory to initialize. Empty means the current directory.
	Project string
	// Context resolves relative paths. Nil means paths.Current().
	Context *paths.Context
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// InitProject turns a directory into a dotman project by writing an empty
// config into it. The directory is created if needed.
func InitProject(opts InitProjectOptions) (*types.InitResult, error) {
	log := logging.GetLogger("commands.init")

	s, err := internal.NewSession(opts.Project, opts.Context, opts.FileSystem)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("command", "InitProject").Str("project", s.Project).Msg("Executing command")

	if err := s.FS.MkdirAll(s.Project, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to create project directory %s", s.Project)
	}
	if config.Exists(s.Project, s.FS) {
		return nil, errors.New(errors.ErrAlreadyInitialized, "Dotman project already initialized").
			WithDetail("project", s.Project)
	}
	if err := s.SaveConfig(config.New()); err != nil {
		return nil, err
	}

	log.Info().Str("command", "InitProject").
		Str("project", s.Project).
		Msg("Command finished")
	return &types.InitResult{
		Project:    s.Project,
		ConfigPath: config.Path(s.Project),
	}, nil
}
