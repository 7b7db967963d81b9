// Package fsx provides composable afero filesystem adapters: a sandbox that
// jails paths under a root, a read-only view, and a view that logs mutations.
// Each adapter is an explicit afero.Fs implementation, so the compiler sees
// every operation that passes through.
package fsx

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type sandboxFs struct {
	base afero.Fs
	root string
}

// Sandbox returns a view of base confined to root. Every path is resolved
// against root; a path that escapes it (via .. or otherwise) fails with
// ErrOutsideRoot. The root must already exist as a directory on base.
func Sandbox(base afero.Fs, root string) (afero.Fs, error) {
	root = filepath.Clean(root)

	info, err := base.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "sandbox root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("sandbox root %s is not a directory", root)
	}

	return &sandboxFs{base: base, root: root}, nil
}

var _ afero.Fs = (*sandboxFs)(nil)

// resolve maps name into the jail. Absolute paths are reinterpreted as
// relative to the root.
func (s *sandboxFs) resolve(op, name string) (string, error) {
	full := filepath.Clean(filepath.Join(s.root, name))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", &os.PathError{Op: op, Path: name, Err: ErrOutsideRoot}
	}
	return full, nil
}

// relativize strips the root prefix for names reported back to callers.
func (s *sandboxFs) relativize(full string) string {
	rel := strings.TrimPrefix(full, s.root)
	if rel == "" {
		rel = string(filepath.Separator)
	}
	return rel
}

func (s *sandboxFs) Name() string { return "SandboxFs" }

func (s *sandboxFs) Create(name string) (afero.File, error) {
	full, err := s.resolve("create", name)
	if err != nil {
		return nil, err
	}
	f, err := s.base.Create(full)
	if err != nil {
		return nil, err
	}
	return &sandboxFile{File: f, name: s.relativize(full)}, nil
}

func (s *sandboxFs) Open(name string) (afero.File, error) {
	full, err := s.resolve("open", name)
	if err != nil {
		return nil, err
	}
	f, err := s.base.Open(full)
	if err != nil {
		return nil, err
	}
	return &sandboxFile{File: f, name: s.relativize(full)}, nil
}

func (s *sandboxFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	full, err := s.resolve("open", name)
	if err != nil {
		return nil, err
	}
	f, err := s.base.OpenFile(full, flag, perm)
	if err != nil {
		return nil, err
	}
	return &sandboxFile{File: f, name: s.relativize(full)}, nil
}

func (s *sandboxFs) Mkdir(name string, perm os.FileMode) error {
	full, err := s.resolve("mkdir", name)
	if err != nil {
		return err
	}
	return s.base.Mkdir(full, perm)
}

func (s *sandboxFs) MkdirAll(path string, perm os.FileMode) error {
	full, err := s.resolve("mkdir", path)
	if err != nil {
		return err
	}
	return s.base.MkdirAll(full, perm)
}

func (s *sandboxFs) Remove(name string) error {
	full, err := s.resolve("remove", name)
	if err != nil {
		return err
	}
	return s.base.Remove(full)
}

func (s *sandboxFs) RemoveAll(path string) error {
	full, err := s.resolve("remove", path)
	if err != nil {
		return err
	}
	return s.base.RemoveAll(full)
}

func (s *sandboxFs) Rename(oldname, newname string) error {
	oldFull, err := s.resolve("rename", oldname)
	if err != nil {
		return err
	}
	newFull, err := s.resolve("rename", newname)
	if err != nil {
		return err
	}
	return s.base.Rename(oldFull, newFull)
}

func (s *sandboxFs) Stat(name string) (os.FileInfo, error) {
	full, err := s.resolve("stat", name)
	if err != nil {
		return nil, err
	}
	return s.base.Stat(full)
}

func (s *sandboxFs) Chmod(name string, mode os.FileMode) error {
	full, err := s.resolve("chmod", name)
	if err != nil {
		return err
	}
	return s.base.Chmod(full, mode)
}

func (s *sandboxFs) Chown(name string, uid, gid int) error {
	full, err := s.resolve("chown", name)
	if err != nil {
		return err
	}
	return s.base.Chown(full, uid, gid)
}

func (s *sandboxFs) Chtimes(name string, atime, mtime time.Time) error {
	full, err := s.resolve("chtimes", name)
	if err != nil {
		return err
	}
	return s.base.Chtimes(full, atime, mtime)
}

// sandboxFile hides the real location from Name.
type sandboxFile struct {
	afero.File
	name string
}

func (f *sandboxFile) Name() string { return f.name }
