package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AllaVinner/dotman/pkg/types"
)

// Kind is what occupies a path, without following symlinks
type Kind int

const (
	KindNone Kind = iota
	KindFile
	KindDir
	KindSymlink
	KindOther
)

// String returns a human readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "nothing"
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "special file"
	}
}

// KindOf reports what occupies path. A dangling symlink is KindSymlink.
func KindOf(fsys types.FS, path string) (Kind, error) {
	return kindOf(fsys.Lstat(path))
}

// ResolvedKindOf reports what path leads to once symlinks are followed. A
// dangling symlink is KindNone.
func ResolvedKindOf(fsys types.FS, path string) (Kind, error) {
	return kindOf(fsys.Stat(path))
}

func kindOf(info fs.FileInfo, err error) (Kind, error) {
	if err != nil {
		if os.IsNotExist(err) {
			return KindNone, nil
		}
		return KindNone, err
	}
	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink, nil
	case mode.IsDir():
		return KindDir, nil
	case mode.IsRegular():
		return KindFile, nil
	default:
		return KindOther, nil
	}
}

// Exists reports whether anything, including a dangling symlink, occupies path
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}

// CopyFile copies a regular file, preserving its permission bits
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	return fsys.WriteFile(dst, data, info.Mode().Perm())
}

// CopyTree recursively copies the directory src to dst. Symlinks inside
// the tree are recreated with the same link value.
func CopyTree(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}
	if err := fsys.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return err
	}
	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		kind, err := KindOf(fsys, from)
		if err != nil {
			return err
		}
		switch kind {
		case KindDir:
			err = CopyTree(fsys, from, to)
		case KindSymlink:
			var link string
			if link, err = fsys.Readlink(from); err == nil {
				err = fsys.Symlink(link, to)
			}
		case KindFile:
			err = CopyFile(fsys, from, to)
		default:
			err = fmt.Errorf("cannot copy %s: unsupported %s", from, kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Copy copies a file or a directory tree
func Copy(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return CopyTree(fsys, src, dst)
	}
	return CopyFile(fsys, src, dst)
}

// Move renames src to dst, creating dst's parent. When a rename is not
// possible (e.g. across devices) it falls back to copy and remove.
func Move(fsys types.FS, src, dst string) error {
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}
	if err := fsys.Rename(src, dst); err == nil {
		return nil
	}
	if err := Copy(fsys, src, dst); err != nil {
		_ = fsys.RemoveAll(dst)
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}
	return fsys.RemoveAll(src)
}
