package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/AllaVinner/dotman/pkg/types"
)

// CalculateFileChecksum calculates the SHA256 checksum of a file
func CalculateFileChecksum(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data)), nil
}

// CalculateTreeChecksums returns the checksum of every regular file below
// dir, keyed by its forward-slash path relative to dir. Symlinks inside the
// tree are keyed by their link value instead of their content.
func CalculateTreeChecksums(fsys types.FS, dir string) (map[string]string, error) {
	sums := make(map[string]string)
	if err := walk(fsys, dir, "", sums); err != nil {
		return nil, err
	}
	return sums, nil
}

func walk(fsys types.FS, root, rel string, sums map[string]string) error {
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return err
	}
	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		full := filepath.Join(root, childRel)
		info, err := fsys.Lstat(full)
		if err != nil {
			return err
		}
		switch mode := info.Mode(); {
		case mode&fs.ModeSymlink != 0:
			link, err := fsys.Readlink(full)
			if err != nil {
				return err
			}
			sums[filepath.ToSlash(childRel)] = "link:" + link
		case mode.IsDir():
			if err := walk(fsys, root, childRel, sums); err != nil {
				return err
			}
		default:
			sum, err := CalculateFileChecksum(fsys, full)
			if err != nil {
				return err
			}
			sums[filepath.ToSlash(childRel)] = sum
		}
	}
	return nil
}

// TreeDiff compares two checksum maps produced by CalculateTreeChecksums
type TreeDiff struct {
	// Extra lists paths present only in the left tree
	Extra []string
	// Missing lists paths present only in the right tree
	Missing []string
	// Changed lists paths present in both trees with different checksums
	Changed []string
}

// Equal reports whether the trees were identical
func (d TreeDiff) Equal() bool {
	return len(d.Extra) == 0 && len(d.Missing) == 0 && len(d.Changed) == 0
}

// CompareTrees diffs left against right. Every list is sorted.
func CompareTrees(left, right map[string]string) TreeDiff {
	var diff TreeDiff
	for path, sum := range left {
		other, ok := right[path]
		switch {
		case !ok:
			diff.Extra = append(diff.Extra, path)
		case other != sum:
			diff.Changed = append(diff.Changed, path)
		}
	}
	for path := range right {
		if _, ok := left[path]; !ok {
			diff.Missing = append(diff.Missing, path)
		}
	}
	sort.Strings(diff.Extra)
	sort.Strings(diff.Missing)
	sort.Strings(diff.Changed)
	return diff
}
