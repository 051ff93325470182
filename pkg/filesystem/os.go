package filesystem

import (
	"io/fs"
	"os"

	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/types"
	"github.com/rs/zerolog"
)

// osFS is the real filesystem. Reads go straight to os, mutations are
// logged at trace level.
type osFS struct {
	log zerolog.Logger
}

// NewOS returns the OS backed types.FS
func NewOS() types.FS {
	return &osFS{log: logging.GetLogger("filesystem")}
}

func (o *osFS) trace(op, path string, err error) error {
	o.log.Trace().Str("op", op).Str("path", path).Err(err).Msg("fs")
	return err
}

func (o *osFS) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }
func (o *osFS) Lstat(name string) (fs.FileInfo, error)     { return os.Lstat(name) }
func (o *osFS) ReadFile(name string) ([]byte, error)       { return os.ReadFile(name) }
func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (o *osFS) Readlink(name string) (string, error)       { return os.Readlink(name) }

func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return o.trace("write", name, os.WriteFile(name, data, perm))
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return o.trace("mkdir", path, os.MkdirAll(path, perm))
}

// Symlink creates newname pointing at oldname
func (o *osFS) Symlink(oldname, newname string) error {
	return o.trace("symlink", newname, os.Symlink(oldname, newname))
}

func (o *osFS) Remove(name string) error {
	return o.trace("remove", name, os.Remove(name))
}

func (o *osFS) RemoveAll(path string) error {
	return o.trace("remove-all", path, os.RemoveAll(path))
}

func (o *osFS) Rename(oldpath, newpath string) error {
	return o.trace("rename", newpath, os.Rename(oldpath, newpath))
}
