package runner

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test drives POSIX shell utilities")
	}
}

// =============================================================================
// ExecRunner Tests
// =============================================================================

func TestRun_CapturesStdout(t *testing.T) {
	skipWithoutShell(t)

	r := New()
	res, err := r.Run(context.Background(), Spec{
		Path: "echo",
		Args: []string{"hello", "toolbox"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello toolbox\n", string(res.Stdout))
	assert.Equal(t, 0, res.ExitCode)
	assert.NotEmpty(t, res.ID)
	assert.Greater(t, res.Duration, time.Duration(0))
}

func TestRun_CapturesStderrAndExitCode(t *testing.T) {
	skipWithoutShell(t)

	r := New()
	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "echo oops >&2; exit 3"},
	})

	require.Error(t, err)
	require.NotNil(t, res, "result must survive a non-zero exit")
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "oops\n", string(res.Stderr))
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestRun_FeedsStdin(t *testing.T) {
	skipWithoutShell(t)

	r := New()
	res, err := r.Run(context.Background(), Spec{
		Path:  "cat",
		Stdin: []byte("pass-through"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pass-through", string(res.Stdout))
}

func TestRun_SetsWorkingDirAndEnv(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	r := New()
	res, err := r.Run(context.Background(), Spec{
		Path: "sh",
		Args: []string{"-c", "pwd; printf %s \"$TOOLBOX_PROBE\""},
		Dir:  dir,
		Env:  []string{"TOOLBOX_PROBE=42"},
	})
	require.NoError(t, err)

	out := string(res.Stdout)
	// Compare by leaf name; the temp root may be reached via a symlink.
	assert.Contains(t, out, filepath.Base(dir))
	assert.True(t, strings.HasSuffix(out, "42"))
}

func TestRun_Timeout(t *testing.T) {
	skipWithoutShell(t)

	r := New()
	start := time.Now()
	_, err := r.Run(context.Background(), Spec{
		Path:    "sleep",
		Args:    []string{"10"},
		Timeout: 50 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRun_EmptyPath(t *testing.T) {
	r := New()
	_, err := r.Run(context.Background(), Spec{})
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestRun_ExecutableNotFound(t *testing.T) {
	r := New()
	_, err := r.Run(context.Background(), Spec{Path: "definitely-not-a-real-binary-1f2e3d"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// RunAll Tests
// =============================================================================

// stubRunner counts invocations and tracks peak concurrency.
type stubRunner struct {
	running atomic.Int64
	peak    atomic.Int64
	calls   atomic.Int64
	delay   time.Duration
	failOn  string
}

func (s *stubRunner) Run(ctx context.Context, spec Spec) (*Result, error) {
	s.calls.Add(1)

	cur := s.running.Add(1)
	for {
		p := s.peak.Load()
		if cur <= p || s.peak.CompareAndSwap(p, cur) {
			break
		}
	}
	defer s.running.Add(-1)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}

	if s.failOn != "" && spec.Path == s.failOn {
		return nil, errors.New("stub failure")
	}
	return &Result{ID: spec.Path, Stdout: []byte(spec.Path)}, nil
}

func TestRunAll_AlignsResults(t *testing.T) {
	stub := &stubRunner{}
	specs := []Spec{{Path: "a"}, {Path: "b"}, {Path: "c"}}

	results, err := RunAll(context.Background(), stub, specs, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, spec := range specs {
		require.NotNil(t, results[i])
		assert.Equal(t, spec.Path, results[i].ID, "result %d out of position", i)
	}
}

func TestRunAll_HonorsLimit(t *testing.T) {
	stub := &stubRunner{delay: 20 * time.Millisecond}
	specs := make([]Spec, 8)
	for i := range specs {
		specs[i] = Spec{Path: "x"}
	}

	_, err := RunAll(context.Background(), stub, specs, 2)
	require.NoError(t, err)

	assert.LessOrEqual(t, stub.peak.Load(), int64(2), "limit exceeded")
	assert.Equal(t, int64(8), stub.calls.Load())
}

func TestRunAll_FirstErrorWins(t *testing.T) {
	stub := &stubRunner{failOn: "bad"}
	specs := []Spec{{Path: "good"}, {Path: "bad"}, {Path: "good"}}

	results, err := RunAll(context.Background(), stub, specs, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub failure")
	assert.Len(t, results, 3)
}

func TestRunAll_Empty(t *testing.T) {
	results, err := RunAll(context.Background(), &stubRunner{}, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunAll_WithExecRunner(t *testing.T) {
	skipWithoutShell(t)

	specs := []Spec{
		{Path: "echo", Args: []string{"first"}},
		{Path: "echo", Args: []string{"second"}},
	}

	results, err := RunAll(context.Background(), New(), specs, 2)
	require.NoError(t, err)

	assert.Equal(t, "first\n", string(results[0].Stdout))
	assert.Equal(t, "second\n", string(results[1].Stdout))
}
