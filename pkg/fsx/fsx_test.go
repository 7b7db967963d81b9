package fsx

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hxann/go-toolbox/pkg/hash"
)

func newBase(t *testing.T) afero.Fs {
	t.Helper()
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/jail/sub", 0o755))
	require.NoError(t, afero.WriteFile(base, "/jail/inside.txt", []byte("inside"), 0o644))
	require.NoError(t, afero.WriteFile(base, "/secret.txt", []byte("secret"), 0o644))
	return base
}

// ===== Sandbox =====

func TestSandbox_RootMustExist(t *testing.T) {
	_, err := Sandbox(afero.NewMemMapFs(), "/nope")
	assert.Error(t, err)
}

func TestSandbox_RootMustBeDirectory(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/file", []byte("x"), 0o644))

	_, err := Sandbox(base, "/file")
	assert.Error(t, err)
}

func TestSandbox_ReadWriteInsideRoot(t *testing.T) {
	base := newBase(t)
	fs, err := Sandbox(base, "/jail")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/new.txt", []byte("hello"), 0o644))

	// The write must land under the jail on the backing filesystem.
	data, err := afero.ReadFile(base, "/jail/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = afero.ReadFile(fs, "/inside.txt")
	require.NoError(t, err)
	assert.Equal(t, "inside", string(data))
}

func TestSandbox_BlocksEscapes(t *testing.T) {
	fs, err := Sandbox(newBase(t), "/jail")
	require.NoError(t, err)

	escapes := []string{
		"../secret.txt",
		"/../secret.txt",
		"sub/../../secret.txt",
		"../../secret.txt",
	}
	for _, name := range escapes {
		_, err := fs.Open(name)
		assert.ErrorIs(t, err, ErrOutsideRoot, "open %s", name)
	}

	assert.ErrorIs(t, fs.Remove("../secret.txt"), ErrOutsideRoot)
	assert.ErrorIs(t, fs.Rename("/inside.txt", "../stolen.txt"), ErrOutsideRoot)
	assert.ErrorIs(t, fs.Mkdir("../breakout", 0o755), ErrOutsideRoot)
}

func TestSandbox_AbsolutePathStaysInside(t *testing.T) {
	base := newBase(t)
	fs, err := Sandbox(base, "/jail")
	require.NoError(t, err)

	// An absolute path is resolved against the root, not the backing fs.
	data, err := afero.ReadFile(fs, "/inside.txt")
	require.NoError(t, err)
	assert.Equal(t, "inside", string(data))

	_, err = fs.Open("/secret.txt")
	assert.Error(t, err)
	exists, _ := afero.Exists(fs, "/secret.txt")
	assert.False(t, exists)
}

func TestSandbox_FileNameHidesRoot(t *testing.T) {
	fs, err := Sandbox(newBase(t), "/jail")
	require.NoError(t, err)

	f, err := fs.Open("/inside.txt")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "/inside.txt", f.Name())
	assert.NotContains(t, f.Name(), "jail")
}

// ===== ReadOnly =====

func TestReadOnly_ReadsPassThrough(t *testing.T) {
	fs := ReadOnly(newBase(t))

	data, err := afero.ReadFile(fs, "/jail/inside.txt")
	require.NoError(t, err)
	assert.Equal(t, "inside", string(data))

	info, err := fs.Stat("/jail/inside.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	f, err := fs.OpenFile("/jail/inside.txt", os.O_RDONLY, 0)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestReadOnly_RejectsMutations(t *testing.T) {
	fs := ReadOnly(newBase(t))

	tests := []struct {
		name string
		op   func() error
	}{
		{"create", func() error { _, err := fs.Create("/x"); return err }},
		{"openWrite", func() error { _, err := fs.OpenFile("/x", os.O_WRONLY, 0o644); return err }},
		{"openCreate", func() error { _, err := fs.OpenFile("/x", os.O_RDWR|os.O_CREATE, 0o644); return err }},
		{"openAppend", func() error { _, err := fs.OpenFile("/jail/inside.txt", os.O_APPEND, 0o644); return err }},
		{"mkdir", func() error { return fs.Mkdir("/x", 0o755) }},
		{"mkdirAll", func() error { return fs.MkdirAll("/x/y", 0o755) }},
		{"remove", func() error { return fs.Remove("/jail/inside.txt") }},
		{"removeAll", func() error { return fs.RemoveAll("/jail") }},
		{"rename", func() error { return fs.Rename("/jail/inside.txt", "/x") }},
		{"chmod", func() error { return fs.Chmod("/jail/inside.txt", 0o600) }},
		{"chown", func() error { return fs.Chown("/jail/inside.txt", 1, 1) }},
		{"chtimes", func() error { return fs.Chtimes("/jail/inside.txt", time.Now(), time.Now()) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrReadOnly)

			var pathErr *os.PathError
			assert.True(t, errors.As(err, &pathErr))
		})
	}
}

func TestReadOnly_BaseUntouched(t *testing.T) {
	base := newBase(t)
	fs := ReadOnly(base)

	_ = fs.Remove("/jail/inside.txt")

	exists, err := afero.Exists(base, "/jail/inside.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

// ===== Logged =====

func TestLogged_RecordsMutations(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	fs := Logged(newBase(t), zap.New(core))

	require.NoError(t, afero.WriteFile(fs, "/jail/logged.txt", []byte("x"), 0o644))
	require.NoError(t, fs.Remove("/jail/logged.txt"))

	_, err := afero.ReadFile(fs, "/jail/inside.txt")
	require.NoError(t, err)

	entries := logs.All()
	require.NotEmpty(t, entries)

	ops := make([]string, 0, len(entries))
	for _, e := range entries {
		fields := e.ContextMap()
		ops = append(ops, fields["op"].(string))
		// Reads never show up in the log.
		assert.NotEqual(t, "/jail/inside.txt", fields["path"])
	}
	assert.Contains(t, ops, "remove")
}

func TestLogged_RecordsFailures(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	fs := Logged(ReadOnly(newBase(t)), zap.New(core))

	err := fs.Remove("/jail/inside.txt")
	require.Error(t, err)

	entries := logs.FilterMessage("fs op failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "remove", entries[0].ContextMap()["op"])
}

func TestLogged_NilLogger(t *testing.T) {
	fs := Logged(newBase(t), nil)
	assert.NoError(t, fs.Mkdir("/quiet", 0o755))
}

// ===== Copy / Checksum =====

func TestCopy(t *testing.T) {
	fs := newBase(t)

	n, err := Copy(fs, "/jail/inside.txt", "/copied.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(len("inside")), n)

	data, err := afero.ReadFile(fs, "/copied.txt")
	require.NoError(t, err)
	assert.Equal(t, "inside", string(data))
}

func TestCopy_MissingSource(t *testing.T) {
	_, err := Copy(afero.NewMemMapFs(), "/absent", "/out")
	assert.Error(t, err)
}

func TestCopy_IntoReadOnlyFails(t *testing.T) {
	_, err := Copy(ReadOnly(newBase(t)), "/jail/inside.txt", "/out")
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestChecksum(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("checksum me, twice if you must")
	require.NoError(t, afero.WriteFile(fs, "/a", content, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/same", content, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/diff", []byte("something else"), 0o644))

	sumA, err := Checksum(fs, "/a")
	require.NoError(t, err)
	assert.Equal(t, hash.Sum64(content), sumA, "streaming sum must match one-shot sum")

	sumSame, err := Checksum(fs, "/same")
	require.NoError(t, err)
	assert.Equal(t, sumA, sumSame)

	sumDiff, err := Checksum(fs, "/diff")
	require.NoError(t, err)
	assert.NotEqual(t, sumA, sumDiff)
}

func TestChecksum_MissingFile(t *testing.T) {
	_, err := Checksum(afero.NewMemMapFs(), "/absent")
	assert.Error(t, err)
}
