package links

import (
	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/types"
)

// CheckSetup verifies that link can be materialized: the target must exist
// in the project and nothing may occupy the dotfile path, not even a
// dangling symlink.
func CheckSetup(fs types.FS, link types.Link) error {
	targetKind, err := filesystem.ResolvedKindOf(fs, link.Target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", link.Target)
	}
	if targetKind == filesystem.KindNone {
		return errors.Newf(errors.ErrTargetMissing,
			"Cannot setup target %s, as %s does not exist in the project.", link.TargetKey, link.Target).
			WithDetail("target", link.TargetKey)
	}
	if filesystem.Exists(fs, link.Dotfile) {
		return errors.Newf(errors.ErrDotfileOccupied,
			"Cannot setup target %s, as the dotfile path %s already is occupied.", link.TargetKey, link.Dotfile).
			WithDetail("target", link.TargetKey).
			WithDetail("dotfile", link.Dotfile)
	}
	return nil
}

// CheckSyncCompatible verifies that link is a copy that can be refreshed:
// the dotfile exists, is not a symlink and has the same kind as the target.
func CheckSyncCompatible(fs types.FS, link types.Link) error {
	dotfileKind, err := filesystem.KindOf(fs, link.Dotfile)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", link.Dotfile)
	}
	switch dotfileKind {
	case filesystem.KindNone:
		return syncError(errors.ErrDotfileNotFound, link, "doesn't exist")
	case filesystem.KindSymlink:
		return syncError(errors.ErrDotfileIsSymlink, link, "is a symlink")
	}

	targetKind, err := filesystem.ResolvedKindOf(fs, link.Target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", link.Target)
	}
	switch {
	case targetKind == filesystem.KindNone:
		return errors.Newf(errors.ErrTargetMissing,
			"Cannot refresh target %s, as %s does not exist in the project.", link.TargetKey, link.Target).
			WithDetail("target", link.TargetKey)
	case targetKind == filesystem.KindDir && dotfileKind != filesystem.KindDir:
		return syncError(errors.ErrKindMismatch, link, "is not a directory")
	case targetKind != filesystem.KindDir && dotfileKind != filesystem.KindFile:
		return syncError(errors.ErrKindMismatch, link, "is not a file")
	}
	return nil
}

func syncError(code errors.ErrorCode, link types.Link, reason string) error {
	return errors.Newf(code, "Cannot refresh target %s, as the dotfile path %s %s.",
		link.TargetKey, link.Dotfile, reason).
		WithDetail("target", link.TargetKey).
		WithDetail("dotfile", link.Dotfile)
}
