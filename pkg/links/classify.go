package links

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AllaVinner/dotman/pkg/filesystem"
	"github.com/AllaVinner/dotman/pkg/internal/hashutil"
	"github.com/AllaVinner/dotman/pkg/types"
)

// Unconfigured reports an entry whose reference has no path for the
// context's platform.
func Unconfigured(key, target string) types.LinkStatus {
	return types.LinkStatus{
		TargetKey: key,
		Target:    target,
		State:     types.LinkStateUnconfiguredPlatform,
		Status:    types.StatusUnconfiguredPlatform,
	}
}

// Classify audits link without modifying anything. Errors are only
// returned when the filesystem cannot be read.
func Classify(fs types.FS, link types.Link) (types.LinkStatus, error) {
	st := types.LinkStatus{
		TargetKey: link.TargetKey,
		Target:    link.Target,
		Dotfile:   link.Dotfile,
	}
	set := func(state types.LinkState, status string) (types.LinkStatus, error) {
		st.State, st.Status = state, status
		return st, nil
	}

	targetKind, err := filesystem.ResolvedKindOf(fs, link.Target)
	if err != nil {
		return st, err
	}
	if targetKind == filesystem.KindNone {
		return set(types.LinkStateMissingTarget, types.StatusMissingTarget)
	}

	dotfileKind, err := filesystem.KindOf(fs, link.Dotfile)
	if err != nil {
		return st, err
	}
	switch dotfileKind {
	case filesystem.KindNone:
		return set(types.LinkStateMissingDotfile, types.StatusMissingDotfile)
	case filesystem.KindSymlink:
		dest, err := fs.Readlink(link.Dotfile)
		if err != nil {
			return st, err
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(link.Dotfile), dest)
		}
		if filepath.Clean(dest) != filepath.Clean(link.Target) {
			return set(types.LinkStateWrongLink, types.StatusWrongLink)
		}
		return set(types.LinkStateComplete, types.StatusComplete)
	}

	if targetKind != filesystem.KindDir {
		if dotfileKind != filesystem.KindFile {
			return set(types.LinkStateKindMismatch, types.StatusFileKindMismatch)
		}
		same, err := sameFile(fs, link.Dotfile, link.Target)
		if err != nil {
			return st, err
		}
		if !same {
			return set(types.LinkStateDrifted, types.StatusFileContentDiffers)
		}
		return set(types.LinkStateCompleteCopy, types.StatusCompleteCopy)
	}

	if dotfileKind != filesystem.KindDir {
		return set(types.LinkStateKindMismatch, types.StatusDirKindMismatch)
	}
	dotfileSums, err := hashutil.CalculateTreeChecksums(fs, link.Dotfile)
	if err != nil {
		return st, err
	}
	targetSums, err := hashutil.CalculateTreeChecksums(fs, link.Target)
	if err != nil {
		return st, err
	}
	diff := hashutil.CompareTrees(dotfileSums, targetSums)
	switch {
	case len(diff.Extra) > 0:
		return set(types.LinkStateDrifted, fmt.Sprintf(types.StatusExtraFilesFormat, strings.Join(diff.Extra, ", ")))
	case len(diff.Missing) > 0:
		return set(types.LinkStateDrifted, fmt.Sprintf(types.StatusMissingFilesFormat, strings.Join(diff.Missing, ", ")))
	case len(diff.Changed) > 0:
		return set(types.LinkStateDrifted, fmt.Sprintf(types.StatusFileDiffersFormat, diff.Changed[0]))
	}
	return set(types.LinkStateCompleteCopy, types.StatusCompleteCopy)
}

func sameFile(fs types.FS, a, b string) (bool, error) {
	sumA, err := hashutil.CalculateFileChecksum(fs, a)
	if err != nil {
		return false, err
	}
	sumB, err := hashutil.CalculateFileChecksum(fs, b)
	if err != nil {
		return false, err
	}
	return sumA == sumB, nil
}
