// Package runner runs external programs with a time limit.
package runner

import (
	"bytes"
	"context"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// ErrTimeout is returned when a program is killed for running too long.
var ErrTimeout = errors.New("timed out")

// command builds the process to run. Replaced in tests.
var command = exec.Command

// Run name with args, returning its combined output. The program runs in its
// own process group, and the whole group is killed after timeout, or when ctx
// is done, so children left behind by a shell do not outlive it.
func Run(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var out bytes.Buffer
	cmd := command(name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "running %s", name)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return out.Bytes(), errors.Wrapf(err, "running %s", name)
		}
		return out.Bytes(), nil
	case <-ctx.Done():
		syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		<-done
		if ctx.Err() == context.DeadlineExceeded {
			return out.Bytes(), errors.Wrapf(ErrTimeout, "%s after %s", name, timeout)
		}
		return out.Bytes(), errors.Wrapf(ctx.Err(), "running %s", name)
	}
}

// Shell runs a command line with sh -c.
func Shell(ctx context.Context, timeout time.Duration, line string) ([]byte, error) {
	return Run(ctx, timeout, "sh", "-c", line)
}
