package executor

import "context"

// Stream names for process output
const (
	// StdoutStream is the name of the standard output stream
	StdoutStream = "stdout"
	// StderrStream is the name of the standard error stream
	StderrStream = "stderr"
)

// ExitCodeUnknown is reported when the process state is unavailable.
const ExitCodeUnknown = -1

// Command describes the child process to launch. Args does not include the
// executable itself.
type Command struct {
	Path string
	Args []string
	Dir  string
}

// Result contains the outcome of a process execution
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessExecutor defines the interface for launching the test-runner process
type ProcessExecutor interface {
	// Execute launches the command and waits for it to finish
	Execute(ctx context.Context, cmd Command) (*Result, error)
	// Validate validates a command without executing it
	Validate(cmd Command) error
}

// OutputWriter defines the interface for streaming process output
type OutputWriter interface {
	// Write writes a chunk of output from the named stream
	Write(stream string, data []byte) error

	// Close closes the output writer
	Close() error
}
