// Package executor launches the assembled test-runner command as a child
// process, streams its output and captures the exit status. It never
// interprets the test runner's behavior; a non-zero exit is surfaced to the
// caller as-is.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/jvmtools/go-testng-launcher/internal/common"
)

// Error definitions
var (
	ErrEmptyCommand = errors.New("command cannot be empty")
	ErrDirNotExists = errors.New("directory does not exist")
)

// DefaultExecutor is the default implementation of ProcessExecutor
type DefaultExecutor struct {
	FS  common.FileSystem
	Out OutputWriter
}

// NewDefaultExecutor creates a new default process executor streaming output
// to the console.
func NewDefaultExecutor() ProcessExecutor {
	return &DefaultExecutor{
		FS:  common.NewDefaultFileSystem(),
		Out: &consoleOutputWriter{},
	}
}

// Execute implements the ProcessExecutor interface
func (e *DefaultExecutor) Execute(ctx context.Context, cmd Command) (*Result, error) {
	if err := e.Validate(cmd); err != nil {
		return nil, fmt.Errorf("command validation failed: %w", err)
	}

	// Resolve the executable through PATH so a bare "java" works.
	path, lookErr := exec.LookPath(cmd.Path)
	if lookErr != nil {
		return nil, fmt.Errorf("failed to find command %q: %w", cmd.Path, lookErr)
	}

	// #nosec G204 - the argument vector is assembled by the operation builder
	execCmd := exec.CommandContext(ctx, path, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	var stdout, stderr []byte
	var cmdErr error

	if e.Out != nil {
		// Buffered wrappers both capture output and stream it live.
		stdoutWrapper := &outputWrapper{writer: e.Out, stream: StdoutStream}
		stderrWrapper := &outputWrapper{writer: e.Out, stream: StderrStream}

		execCmd.Stdout = stdoutWrapper
		execCmd.Stderr = stderrWrapper

		cmdErr = execCmd.Run()

		stdout = stdoutWrapper.GetBuffer()
		stderr = stderrWrapper.GetBuffer()
	} else {
		stdout, cmdErr = execCmd.Output()
		var exitErr *exec.ExitError
		if errors.As(cmdErr, &exitErr) {
			stderr = exitErr.Stderr
		}
	}

	result := &Result{
		Stdout: string(stdout),
		Stderr: string(stderr),
	}
	if execCmd.ProcessState != nil {
		result.ExitCode = execCmd.ProcessState.ExitCode()
	} else {
		result.ExitCode = ExitCodeUnknown
	}

	if cmdErr != nil {
		return result, fmt.Errorf("command execution failed: %w", cmdErr)
	}

	return result, nil
}

// Validate implements the ProcessExecutor interface
func (e *DefaultExecutor) Validate(cmd Command) error {
	if cmd.Path == "" {
		return ErrEmptyCommand
	}

	if cmd.Dir != "" {
		exists, err := e.FS.FileExists(cmd.Dir)
		if err != nil {
			return fmt.Errorf("failed to check directory %s: %w", cmd.Dir, err)
		}
		if !exists {
			return fmt.Errorf("working directory %q does not exist: %w", cmd.Dir, ErrDirNotExists)
		}
	}

	return nil
}

// consoleOutputWriter implements OutputWriter by writing to stdout/stderr
type consoleOutputWriter struct {
	mu sync.Mutex
}

func (w *consoleOutputWriter) Write(stream string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if stream == StderrStream {
		_, err := os.Stderr.Write(data)
		return err
	}
	_, err := os.Stdout.Write(data)
	return err
}

func (w *consoleOutputWriter) Close() error {
	// Nothing to close for console output
	return nil
}

// outputWrapper is an io.Writer that both captures output in a buffer
// and forwards it to an OutputWriter with a specific stream name
type outputWrapper struct {
	writer OutputWriter
	stream string
	buffer bytes.Buffer
	mu     sync.Mutex
}

func (w *outputWrapper) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buffer.Write(p)

	if w.writer != nil {
		if err := w.writer.Write(w.stream, p); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

func (w *outputWrapper) GetBuffer() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.Bytes()
}
