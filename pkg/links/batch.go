package links

import (
	"context"
	"fmt"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/paths"
	"github.com/AllaVinner/dotman/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// Plan validates a batch for project and returns it unchanged when it can
// run. Links are first checked against each other, then every link is
// passed to check. Nothing is modified, so a failing plan leaves the
// filesystem as it was.
func Plan(project string, links []types.Link, check func(types.Link) error) ([]types.Link, error) {
	if err := CheckBatch(project, links); err != nil {
		return nil, err
	}
	for _, link := range links {
		if err := check(link); err != nil {
			return nil, err
		}
	}
	return links, nil
}

// CheckBatch rejects dotfile paths that collide within the batch: the same
// path planned twice, a path below another planned path, or a path inside
// the project itself.
func CheckBatch(project string, links []types.Link) error {
	for i, link := range links {
		if paths.IsWithin(link.Dotfile, project) {
			return errors.Newf(errors.ErrInvalidInput,
				"Cannot use target %s, as the dotfile path %s is inside the project %s.",
				link.TargetKey, link.Dotfile, project).
				WithDetail("target", link.TargetKey).
				WithDetail("dotfile", link.Dotfile)
		}
		for _, other := range links[:i] {
			switch {
			case link.Dotfile == other.Dotfile:
				return errors.Newf(errors.ErrDotfileOccupied,
					"Cannot use target %s, as the dotfile path %s already is used by target %s.",
					link.TargetKey, link.Dotfile, other.TargetKey).
					WithDetail("target", link.TargetKey).
					WithDetail("dotfile", link.Dotfile)
			case paths.IsWithin(link.Dotfile, other.Dotfile), paths.IsWithin(other.Dotfile, link.Dotfile):
				return errors.Newf(errors.ErrInvalidInput,
					"Cannot use targets %s and %s together, as the dotfile paths %s and %s are nested.",
					other.TargetKey, link.TargetKey, other.Dotfile, link.Dotfile).
					WithDetail("target", link.TargetKey).
					WithDetail("dotfile", link.Dotfile)
			}
		}
	}
	return nil
}

// Execute applies every link in order as one synthfs pipeline. Execution
// is not transactional: on failure the links already applied stay in place
// and are returned along with an error naming how far the batch got.
func Execute(links []types.Link, apply func(types.Link) error) ([]types.Link, error) {
	if len(links) == 0 {
		return []types.Link{}, nil
	}

	done := make([]types.Link, 0, len(links))
	var failed *types.Link
	var failErr error

	sfs := synthfs.New()
	ops := make([]synthfs.Operation, 0, len(links))
	for i := range links {
		link := links[i]
		id := fmt.Sprintf("link_%d_%s", i, link.TargetKey)
		ops = append(ops, sfs.CustomOperationWithID(id, func(ctx context.Context, _ filesystem.FileSystem) error {
			if failErr != nil {
				return errBatchStopped
			}
			if err := apply(link); err != nil {
				failed, failErr = &link, err
				return err
			}
			done = append(done, link)
			return nil
		}))
	}

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	log.Debug().Int("operationCount", len(ops)).Msg("Executing link pipeline")
	_, err := synthfs.RunWithOptions(context.Background(), pipelineFS(), options, ops...)

	if failErr != nil {
		log.Error().
			Err(failErr).
			Str("target", failed.TargetKey).
			Int("applied", len(done)).
			Int("total", len(links)).
			Msg("Batch stopped")
		return done, errors.Wrapf(failErr, errors.GetErrorCode(failErr),
			"applied %d of %d links before %s failed", len(done), len(links), failed.TargetKey).
			WithDetail("applied", len(done))
	}
	if err != nil {
		return done, errors.Wrapf(err, errors.ErrInternal,
			"link pipeline failed after %d of %d links", len(done), len(links)).
			WithDetail("applied", len(done))
	}
	return done, nil
}

var errBatchStopped = errors.New(errors.ErrInternal, "batch stopped by an earlier failure")

// pipelineFS is the filesystem handed to the pipeline. Link operations do
// their work through types.FS, so it is only used for bookkeeping.
func pipelineFS() filesystem.FullFileSystem {
	osfs := filesystem.NewOSFileSystem("/")
	return synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()
}
