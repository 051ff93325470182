package status

import (
	"github.com/AllaVinner/dotman/pkg/commands/internal"
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/links"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	// Project defaults to the current directory
	Project    string
	Context    *paths.Context
	FileSystem types.FS
}

// GetStatus audits every configured target of a project. It never modifies
// the config or the filesystem.
func GetStatus(opts StatusOptions) (*types.ProjectStatus, error) {
	logger := logging.GetLogger("commands.status")

	s, err := internal.NewSession(opts.Project, opts.Context, opts.FileSystem)
	if err != nil {
		return nil, err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	result := &types.ProjectStatus{
		Project:  s.Project,
		Platform: s.Ctx.Platform,
		Links:    make([]types.LinkStatus, 0, len(cfg.Dotfiles)),
	}
	for _, key := range cfg.Targets() {
		ref, _ := cfg.Get(key)
		link, err := links.Resolve(s.Project, key, ref, types.LinkModeSymlink, s.Ctx)
		if err != nil {
			switch errors.GetErrorCode(err) {
			case errors.ErrPlatformMissing, errors.ErrEmptyDotfile:
				result.Links = append(result.Links, links.Unconfigured(key, paths.TargetPath(key, s.Project)))
				continue
			default:
				return nil, err
			}
		}
		st, err := links.Classify(s.FS, link)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect target %s", key)
		}
		result.Links = append(result.Links, st)
	}

	logger.Debug().
		Str("project", s.Project).
		Int("links", len(result.Links)).
		Bool("healthy", result.Healthy()).
		Msg("Status computed")
	return result, nil
}
