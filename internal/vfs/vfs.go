package vfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// FS is the filesystem capability used by the store and the installer.
type FS interface {
	Exists(name string) bool
	Read(name string) (string, error)
	Write(name, data string) error
	List(dir string) ([]string, error)
	Remove(name string) error
}

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// aferoFS implements FS using afero.
type aferoFS struct {
	fs afero.Fs
}

// New wraps an afero filesystem.
func New(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOS returns a filesystem rooted at root on the local disk. Every path
// handed to it is interpreted relative to root.
func NewOS(root string) FS {
	return New(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() FS {
	return New(afero.NewMemMapFs())
}

func (a *aferoFS) Exists(name string) bool {
	info, err := a.fs.Stat(clean(name))
	return err == nil && !info.IsDir()
}

func (a *aferoFS) Read(name string) (string, error) {
	p := clean(name)
	info, err := a.fs.Stat(p)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", &fs.PathError{Op: "read", Path: p, Err: fs.ErrInvalid}
	}
	data, err := afero.ReadFile(a.fs, p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the contents of name, creating parent directories as needed.
func (a *aferoFS) Write(name, data string) error {
	p := clean(name)
	if dir := path.Dir(p); dir != "/" {
		if err := a.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return afero.WriteFile(a.fs, p, []byte(data), filePerm)
}

// List returns every regular file below dir, sorted. A missing directory
// yields an empty list.
func (a *aferoFS) List(dir string) ([]string, error) {
	root := clean(dir)
	var files []string
	err := afero.Walk(a.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path.Clean("/"+filepath.ToSlash(p)))
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(clean(name))
}

// clean anchors a path at "/" so "x.js" and "/x.js" address the same file.
func clean(name string) string {
	return path.Clean("/" + name)
}
