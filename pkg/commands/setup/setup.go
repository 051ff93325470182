package setup

import (
	"github.com/AllaVinner/dotman/pkg/commands/internal"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/links"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// SetupOptions holds options for the setup commands
type SetupOptions struct {
	// Target is the project-relative target to set up. Ignored by SetupProject.
	Target string
	// Project defaults to the current directory
	Project string
	// Mode defaults to symlink
	Mode       types.LinkMode
	Context    *paths.Context
	FileSystem types.FS
}

// SetupTarget recreates the dotfile side of one configured target
func SetupTarget(opts SetupOptions) (*types.SetupResult, error) {
	return run(opts, false)
}

// SetupProject recreates the dotfile side of every configured target. All
// targets are validated before the first link is created.
func SetupProject(opts SetupOptions) (*types.SetupResult, error) {
	return run(opts, true)
}

func run(opts SetupOptions, all bool) (*types.SetupResult, error) {
	logger := logging.GetLogger("commands.setup")
	defer logging.LogOperationStart(logger, "setup")()

	s, err := internal.NewSession(opts.Project, opts.Context, opts.FileSystem)
	if err != nil {
		return nil, err
	}
	mode, err := types.ParseLinkMode(string(opts.Mode))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid mode")
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	var planned []types.Link
	if all {
		planned, err = links.ResolveAll(cfg, s.Project, mode, s.Ctx)
	} else {
		planned, err = s.ResolveTarget(cfg, opts.Target, mode)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("project", s.Project).
		Str("mode", string(mode)).
		Int("links", len(planned)).
		Msg("Setting up links")

	planned, err = links.Plan(s.Project, planned, func(l types.Link) error {
		return links.CheckSetup(s.FS, l)
	})
	if err != nil {
		return nil, err
	}
	done, err := links.Execute(planned, func(l types.Link) error {
		return links.Materialize(s.FS, l)
	})
	result := &types.SetupResult{Project: s.Project, Links: done}
	if err != nil {
		return result, err
	}

	logger.Info().Str("project", s.Project).Int("links", len(done)).Msg("Setup finished")
	return result, nil
}
