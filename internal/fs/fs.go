package fs

import (
	"io"
	"os"
)

// File is a file opened for writing.
type File interface {
	io.WriteCloser
	Name() string
	Sync() error
	Chmod(mode os.FileMode) error
}

// FileSystem abstracts the file system operations of an atomic write:
// create a temporary file, fill it and rename it into place.
type FileSystem interface {
	CreateTemp(dir, pattern string) (File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	MkdirAll(path string, perm os.FileMode) error
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) CreateTemp(dir, pattern string) (File, error) {
	return os.CreateTemp(dir, pattern)
}

func (LocalFS) Remove(name string) error             { return os.Remove(name) }
func (LocalFS) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }
func (LocalFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Default is the default local file system.
var Default FileSystem = LocalFS{}
