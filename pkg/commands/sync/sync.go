package sync

import (
	"fmt"

	"github.com/AllaVinner/dotman/pkg/commands/internal"
	"github.com/AllaVinner/dotman/pkg/links"
	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
)

// SyncOptions holds options for the sync commands
type SyncOptions struct {
	// Target is the project-relative target to sync. Ignored by SyncProject.
	Target string
	// Project defaults to the current directory
	Project string
	// Direction defaults to push
	Direction  types.SyncDirection
	Context    *paths.Context
	FileSystem types.FS
}

// SyncTarget refreshes one copy-mode target
func SyncTarget(opts SyncOptions) (*types.SyncResult, error) {
	return run(opts, false)
}

// SyncProject refreshes every target of the project. Every target must be
// a copy; all are checked before the first one is refreshed.
func SyncProject(opts SyncOptions) (*types.SyncResult, error) {
	return run(opts, true)
}

func run(opts SyncOptions, all bool) (*types.SyncResult, error) {
	logger := logging.GetLogger("commands.sync")
	defer logging.LogOperationStart(logger, "sync")()

	direction := opts.Direction
	switch direction {
	case "":
		direction = types.SyncPush
	case types.SyncPush, types.SyncPull:
	default:
		panic(fmt.Sprintf("sync: unknown direction %q", direction))
	}

	s, err := internal.NewSession(opts.Project, opts.Context, opts.FileSystem)
	if err != nil {
		return nil, err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	var planned []types.Link
	if all {
		planned, err = links.ResolveAll(cfg, s.Project, types.LinkModeCopy, s.Ctx)
	} else {
		planned, err = s.ResolveTarget(cfg, opts.Target, types.LinkModeCopy)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("project", s.Project).
		Str("direction", string(direction)).
		Int("links", len(planned)).
		Msg("Syncing links")

	planned, err = links.Plan(s.Project, planned, func(l types.Link) error {
		return links.CheckSyncCompatible(s.FS, l)
	})
	if err != nil {
		return nil, err
	}
	done, err := links.Execute(planned, func(l types.Link) error {
		return links.Refresh(s.FS, l, direction)
	})
	result := &types.SyncResult{Project: s.Project, Direction: direction, Links: done}
	if err != nil {
		return result, err
	}

	logger.Info().Str("project", s.Project).Int("links", len(done)).Msg("Sync finished")
	return result, nil
}
