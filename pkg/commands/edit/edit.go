package edit

import (
	"fmt"

	"github.com/AllaVinner/dotman/pkg/commands/internal"
	"github.com/AllaVinner/dotman/pkg/config"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/links"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// EditOptions holds options for the edit command
type EditOptions struct {
	// Target is the configured target to repoint
	Target string
	// Dotfile is the new dotfile location
	Dotfile string
	// Project defaults to the current directory
	Project string
	// Platform scopes the change to one platform. Empty means the whole
	// reference for single references, and the context's platform for
	// per-platform ones.
	Platform   string
	Context    *paths.Context
	FileSystem types.FS
}

// EditDotfile changes which dotfile a target is linked to. Only the config
// is changed; setup or sync must be run to update the filesystem.
func EditDotfile(opts EditOptions) (*types.EditResult, error) {
	logger := logging.GetLogger("commands.edit")

	var platform types.Platform
	if opts.Platform != "" {
		p, err := types.ParsePlatform(opts.Platform)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid platform")
		}
		platform = p
	}

	s, err := internal.NewSession(opts.Project, opts.Context, opts.FileSystem)
	if err != nil {
		return nil, err
	}
	key, err := s.TargetKey(opts.Target)
	if err != nil {
		return nil, err
	}
	portable, err := paths.FormatPortable(paths.Resolve(opts.Dotfile, s.Ctx), s.Ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	previous, err := links.Lookup(cfg, key, opts.Target, s.Project)
	if err != nil {
		return nil, err
	}

	result := &types.EditResult{Project: s.Project, TargetKey: key, Current: portable}
	var updated config.DotfileRef
	switch previous.Kind {
	case config.RefSingle:
		result.Previous = previous.Path
		if platform == "" {
			updated = config.SingleRef(portable)
			break
		}
		promoted := make(map[types.Platform]string, len(types.AllPlatforms))
		for _, p := range types.AllPlatforms {
			promoted[p] = previous.Path
		}
		promoted[platform] = portable
		updated = config.PlatformRef(promoted)
		result.Platform = platform
		result.Promoted = true
	case config.RefPlatform:
		if platform == "" {
			platform = s.Ctx.Platform
		}
		result.Previous = previous.Platforms[platform]
		updated = config.PlatformRef(previous.Platforms)
		updated.Platforms[platform] = portable
		result.Platform = platform
	default:
		panic(fmt.Sprintf("edit: unknown dotfile reference kind %v", previous.Kind))
	}

	cfg.Set(key, updated)
	if err := s.SaveConfig(cfg); err != nil {
		return nil, err
	}

	logger.Info().
		Str("project", s.Project).
		Str("target", key).
		Str("platform", string(result.Platform)).
		Str("previous", result.Previous).
		Str("dotfile", portable).
		Bool("promoted", result.Promoted).
		Msg("Dotfile reference edited")
	return result, nil
}
