package fsx

import (
	"os"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type loggedFs struct {
	base afero.Fs
	log  *zap.Logger
}

// Logged returns a view of base that logs every mutating operation at debug
// level. Reads are not logged. A nil logger disables logging.
func Logged(base afero.Fs, log *zap.Logger) afero.Fs {
	if log == nil {
		log = zap.NewNop()
	}
	return &loggedFs{base: base, log: log}
}

var _ afero.Fs = (*loggedFs)(nil)

func (l *loggedFs) logOp(op, name string, err error) {
	if err != nil {
		l.log.Debug("fs op failed", zap.String("op", op), zap.String("path", name), zap.Error(err))
		return
	}
	l.log.Debug("fs op", zap.String("op", op), zap.String("path", name))
}

func (l *loggedFs) Name() string { return "LoggedFs" }

func (l *loggedFs) Create(name string) (afero.File, error) {
	f, err := l.base.Create(name)
	l.logOp("create", name, err)
	return f, err
}

func (l *loggedFs) Open(name string) (afero.File, error) {
	return l.base.Open(name)
}

func (l *loggedFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := l.base.OpenFile(name, flag, perm)
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND|os.O_CREATE|os.O_TRUNC) != 0 {
		l.logOp("open", name, err)
	}
	return f, err
}

func (l *loggedFs) Mkdir(name string, perm os.FileMode) error {
	err := l.base.Mkdir(name, perm)
	l.logOp("mkdir", name, err)
	return err
}

func (l *loggedFs) MkdirAll(path string, perm os.FileMode) error {
	err := l.base.MkdirAll(path, perm)
	l.logOp("mkdir", path, err)
	return err
}

func (l *loggedFs) Remove(name string) error {
	err := l.base.Remove(name)
	l.logOp("remove", name, err)
	return err
}

func (l *loggedFs) RemoveAll(path string) error {
	err := l.base.RemoveAll(path)
	l.logOp("remove", path, err)
	return err
}

func (l *loggedFs) Rename(oldname, newname string) error {
	err := l.base.Rename(oldname, newname)
	if err != nil {
		l.log.Debug("fs op failed", zap.String("op", "rename"), zap.String("from", oldname), zap.String("to", newname), zap.Error(err))
	} else {
		l.log.Debug("fs op", zap.String("op", "rename"), zap.String("from", oldname), zap.String("to", newname))
	}
	return err
}

func (l *loggedFs) Stat(name string) (os.FileInfo, error) {
	return l.base.Stat(name)
}

func (l *loggedFs) Chmod(name string, mode os.FileMode) error {
	err := l.base.Chmod(name, mode)
	l.logOp("chmod", name, err)
	return err
}

func (l *loggedFs) Chown(name string, uid, gid int) error {
	err := l.base.Chown(name, uid, gid)
	l.logOp("chown", name, err)
	return err
}

func (l *loggedFs) Chtimes(name string, atime, mtime time.Time) error {
	err := l.base.Chtimes(name, atime, mtime)
	l.logOp("chtimes", name, err)
	return err
}
