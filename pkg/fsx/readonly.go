package fsx

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

type readOnlyFs struct {
	base afero.Fs
}

// ReadOnly returns a view of base that rejects every mutating operation with
// an *os.PathError wrapping ErrReadOnly. Reads pass through untouched.
func ReadOnly(base afero.Fs) afero.Fs {
	return &readOnlyFs{base: base}
}

var _ afero.Fs = (*readOnlyFs)(nil)

func readOnlyErr(op, name string) error {
	return &os.PathError{Op: op, Path: name, Err: ErrReadOnly}
}

func (r *readOnlyFs) Name() string { return "ReadOnlyFs" }

func (r *readOnlyFs) Create(name string) (afero.File, error) {
	return nil, readOnlyErr("create", name)
}

func (r *readOnlyFs) Open(name string) (afero.File, error) {
	return r.base.Open(name)
}

func (r *readOnlyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND|os.O_CREATE|os.O_TRUNC) != 0 {
		return nil, readOnlyErr("open", name)
	}
	return r.base.OpenFile(name, flag, perm)
}

func (r *readOnlyFs) Mkdir(name string, perm os.FileMode) error {
	return readOnlyErr("mkdir", name)
}

func (r *readOnlyFs) MkdirAll(path string, perm os.FileMode) error {
	return readOnlyErr("mkdir", path)
}

func (r *readOnlyFs) Remove(name string) error {
	return readOnlyErr("remove", name)
}

func (r *readOnlyFs) RemoveAll(path string) error {
	return readOnlyErr("remove", path)
}

func (r *readOnlyFs) Rename(oldname, newname string) error {
	return readOnlyErr("rename", oldname)
}

func (r *readOnlyFs) Stat(name string) (os.FileInfo, error) {
	return r.base.Stat(name)
}

func (r *readOnlyFs) Chmod(name string, mode os.FileMode) error {
	return readOnlyErr("chmod", name)
}

func (r *readOnlyFs) Chown(name string, uid, gid int) error {
	return readOnlyErr("chown", name)
}

func (r *readOnlyFs) Chtimes(name string, atime, mtime time.Time) error {
	return readOnlyErr("chtimes", name)
}
