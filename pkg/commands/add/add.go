package add

import (
	"fmt"
	"path/filepath"

	"github.com/AllaVinner/dotman/pkg/commands/internal"
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
	"github.com/rs/zerolog"
)

// AddDotfileOptions holds options for the add command
type AddDotfileOptions struct {
	// Dotfile is the live file or directory to bring under management
	Dotfile string
	// Target is where it goes inside the project. Defaults to the dotfile's base name.
	Target string
	// Project defaults to the current directory
	Project string
	// Mode defaults to symlink
	Mode       types.LinkMode
	Context    *paths.Context
	FileSystem types.FS // Allow injecting a filesystem for testing
}

// AddDotfile moves a dotfile into the project and links it back to its
// original location (symlink mode), or copies it into the project leaving
// the original in place (copy mode). The mapping is recorded in the
// project config.
func AddDotfile(opts AddDotfileOptions) (*types.AddResult, error) {
	logger := logging.GetLogger("commands.add")

	s, err := internal.NewSession(opts.Project, opts.Context, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	mode, err := types.ParseLinkMode(string(opts.Mode))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid mode")
	}

	dotfile := paths.Resolve(opts.Dotfile, s.Ctx)
	target := opts.Target
	if target == "" {
		target = filepath.Base(dotfile)
	}
	key, err := s.TargetKey(target)
	if err != nil {
		return nil, err
	}
	portable, err := paths.FormatPortable(dotfile, s.Ctx)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("project", s.Project).
		Str("dotfile", dotfile).
		Str("target", key).
		Str("mode", string(mode)).
		Msg("Adding dotfile to project")

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	link := types.Link{
		TargetKey: key,
		Target:    paths.TargetPath(key, s.Project),
		Portable:  portable,
		Dotfile:   dotfile,
		Mode:      mode,
	}
	if err := checkAdd(s.FS, link); err != nil {
		return nil, err
	}
	if previous, ok := cfg.Get(key); ok {
		logger.Warn().
			Str("target", key).
			Str("previous", previous.String()).
			Msg("Target already configured, replacing its dotfile")
	}

	if err := bringIntoProject(s.FS, logger, link); err != nil {
		return nil, err
	}

	cfg.Set(key, config.SingleRef(portable))
	if err := s.SaveConfig(cfg); err != nil {
		logger.Error().Err(err).Str("target", key).Msg("Dotfile moved but config could not be saved")
		return nil, err
	}

	logger.Info().
		Str("target", link.Target).
		Str("dotfile", link.Dotfile).
		Msg("Successfully added dotfile")
	return &types.AddResult{Project: s.Project, Link: link}, nil
}

// checkAdd runs every filesystem precondition before anything is touched
func checkAdd(fs types.FS, link types.Link) error {
	if !filesystem.Exists(fs, link.Dotfile) {
		return errors.Newf(errors.ErrDotfileNotFound, "Dotfile %s does not exist.", link.Dotfile).
			WithDetail("dotfile", link.Dotfile)
	}
	if filesystem.Exists(fs, link.Target) {
		return errors.Newf(errors.ErrTargetExists,
			"Target %s already exists in the project at %s.", link.TargetKey, link.Target).
			WithDetail("target", link.TargetKey)
	}
	if paths.IsWithin(link.Target, link.Dotfile) {
		return errors.Newf(errors.ErrInvalidInput,
			"Cannot add %s, as the project lies inside it.", link.Dotfile)
	}
	return nil
}

// bringIntoProject performs the move and symlink, or the copy
func bringIntoProject(fs types.FS, logger zerolog.Logger, link types.Link) error {
	if err := fs.MkdirAll(filepath.Dir(link.Target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory for %s", link.Target)
	}

	switch link.Mode {
	case types.LinkModeCopy:
		if err := filesystem.Copy(fs, link.Dotfile, link.Target); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to copy %s into the project", link.Dotfile)
		}
		return nil
	case types.LinkModeSymlink:
	default:
		panic(fmt.Sprintf("add: unknown link mode %q", link.Mode))
	}

	if err := filesystem.Move(fs, link.Dotfile, link.Target); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to move %s to %s", link.Dotfile, link.Target)
	}

	// Create symlink back to original location
	if err := fs.Symlink(link.Target, link.Dotfile); err != nil {
		// If symlink fails, try to roll back the move.
		logger.Error().
			Err(err).
			Str("dotfile", link.Dotfile).
			Str("target", link.Target).
			Msg("Failed to create symlink, attempting to roll back move")
		if rollbackErr := filesystem.Move(fs, link.Target, link.Dotfile); rollbackErr != nil {
			logger.Error().
				Err(rollbackErr).
				Msg("Failed to roll back move operation")
			return errors.Wrapf(err, errors.ErrFileAccess,
				"failed to create symlink at %s and also failed to move %s back", link.Dotfile, link.Target)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create symlink at %s", link.Dotfile)
	}
	return nil
}
