// Package runner executes external processes behind a small interface so
// components depending on subprocess output can swap in a fake for tests.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hxann/go-toolbox/pkg/pool/buffer"
)

// Runner executes a process described by a Spec.
type Runner interface {
	Run(ctx context.Context, spec Spec) (*Result, error)
}

// Spec describes a single process invocation.
type Spec struct {
	Path    string        // executable; resolved via PATH when not absolute
	Args    []string      // arguments, not including the executable
	Dir     string        // working directory; inherited when empty
	Env     []string      // KEY=value entries appended to the parent env
	Stdin   []byte        // data fed to the process on stdin
	Timeout time.Duration // per-run limit; 0 relies on ctx alone
}

// Result captures the outcome of a process that ran to completion,
// successfully or not.
type Result struct {
	ID       string // correlation id, also attached to log entries
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// ExecRunner runs processes with os/exec.
type ExecRunner struct {
	log *zap.Logger
}

var _ Runner = (*ExecRunner)(nil)

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithLogger attaches a logger for per-run debug entries.
func WithLogger(log *zap.Logger) Option {
	return func(r *ExecRunner) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates an ExecRunner.
func New(opts ...Option) *ExecRunner {
	r := &ExecRunner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the process and waits for it. A non-nil Result comes back for
// every process that started: on a non-zero exit the Result carries the exit
// code and captured output alongside the error.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) (*Result, error) {
	if spec.Path == "" {
		return nil, ErrEmptyPath
	}

	path, err := exec.LookPath(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, spec.Path)
	}

	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	id := uuid.NewString()

	cmd := exec.CommandContext(ctx, path, spec.Args...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}
	if len(spec.Stdin) > 0 {
		cmd.Stdin = bytes.NewReader(spec.Stdin)
	}

	stdout := buffer.Get()
	stderr := buffer.Get()
	defer buffer.Put(stdout)
	defer buffer.Put(stderr)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	r.log.Debug("starting process",
		zap.String("run_id", id),
		zap.String("path", path),
		zap.Strings("args", spec.Args),
	)

	start := time.Now()
	runErr := cmd.Run()

	// The buffers go back to the pool, so the result keeps its own copies.
	res := &Result{
		ID:       id,
		Stdout:   bytes.Clone(stdout.Bytes()),
		Stderr:   bytes.Clone(stderr.Bytes()),
		Duration: time.Since(start),
	}

	if runErr != nil {
		// A process killed on deadline also surfaces as an ExitError, so
		// the context has to be consulted first.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, errors.Wrapf(ctxErr, "process %s aborted", spec.Path)
		}

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.log.Debug("process exited non-zero",
				zap.String("run_id", id),
				zap.Int("exit_code", res.ExitCode),
				zap.Duration("duration", res.Duration),
			)
			return res, errors.Wrapf(runErr, "process %s exited with code %d", spec.Path, res.ExitCode)
		}

		return res, errors.Wrapf(runErr, "process %s failed", spec.Path)
	}

	r.log.Debug("process finished",
		zap.String("run_id", id),
		zap.Duration("duration", res.Duration),
	)

	return res, nil
}
