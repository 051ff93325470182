package links

import (
	"fmt"
	"path/filepath"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/types"
)

// Materialize creates the dotfile side of link: a symlink to the absolute
// target path, or a copy of the target.
func Materialize(fs types.FS, link types.Link) error {
	if err := fs.MkdirAll(filepath.Dir(link.Dotfile), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create parent directory of %s", link.Dotfile)
	}

	switch link.Mode {
	case types.LinkModeSymlink:
		if err := fs.Symlink(link.Target, link.Dotfile); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to link %s to %s", link.Dotfile, link.Target)
		}
	case types.LinkModeCopy:
		if err := filesystem.Copy(fs, link.Target, link.Dotfile); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to copy %s to %s", link.Target, link.Dotfile)
		}
	default:
		panic(fmt.Sprintf("links: unknown link mode %q", link.Mode))
	}

	log.Debug().
		Str("target", link.Target).
		Str("dotfile", link.Dotfile).
		Str("mode", string(link.Mode)).
		Msg("Link materialized")
	return nil
}

// Refresh replaces one side of a copy with the other. Push overwrites the
// dotfile with the target, pull overwrites the target with the dotfile.
func Refresh(fs types.FS, link types.Link, direction types.SyncDirection) error {
	var src, dst string
	switch direction {
	case types.SyncPush:
		src, dst = link.Target, link.Dotfile
	case types.SyncPull:
		src, dst = link.Dotfile, link.Target
	default:
		panic(fmt.Sprintf("links: unknown sync direction %q", direction))
	}

	if err := fs.RemoveAll(dst); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", dst)
	}
	if err := filesystem.Copy(fs, src, dst); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to copy %s to %s", src, dst)
	}

	log.Debug().
		Str("from", src).
		Str("to", dst).
		Str("direction", string(direction)).
		Msg("Link refreshed")
	return nil
}
