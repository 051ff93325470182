package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/AllaVinner/dotman/pkg/types"
)

// Op names a filesystem operation FaultyFS can fail
type Op string

const (
	OpWriteFile Op = "writefile"
	OpMkdirAll  Op = "mkdirall"
	OpSymlink   Op = "symlink"
	OpRemove    Op = "remove"
	OpRemoveAll Op = "removeall"
	OpRename    Op = "rename"
)

type fault struct {
	op   Op
	path string
}

// FaultyFS wraps a types.FS and returns injected errors for chosen
// operation and path pairs. Reads are never failed.
type FaultyFS struct {
	types.FS
	faults map[fault]error
}

// NewFaultyFS wraps inner
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{FS: inner, faults: make(map[fault]error)}
}

// WithError makes op on path return err. For OpRename the path is the
// source of the rename.
func (f *FaultyFS) WithError(op Op, path string, err error) *FaultyFS {
	f.faults[fault{op: op, path: filepath.Clean(path)}] = err
	return f
}

func (f *FaultyFS) check(op Op, path string) error {
	return f.faults[fault{op: op, path: filepath.Clean(path)}]
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWriteFile, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.check(OpRemoveAll, path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if err := f.check(OpRename, oldpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}
