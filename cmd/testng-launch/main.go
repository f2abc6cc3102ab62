// Package main provides the entry point for the TestNG launcher. It handles
// command-line arguments, loads the run configuration, assembles the TestNG
// command line and executes it as a child JVM process.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jvmtools/go-testng-launcher/internal/config"
	"github.com/jvmtools/go-testng-launcher/internal/executor"
	"github.com/jvmtools/go-testng-launcher/internal/logging"
	"github.com/jvmtools/go-testng-launcher/internal/project"
	"github.com/jvmtools/go-testng-launcher/internal/suitefile"
	"github.com/jvmtools/go-testng-launcher/internal/testng"
)

// Error definitions
var (
	ErrConfigPathRequired = errors.New("config file path is required")
	ErrTestsFailed        = errors.New("test run failed")
)

var (
	configPath = flag.String("config", "", "path to TOML run configuration")
	logLevel   = flag.String("log-level", "", "log level (debug, info, warn, error). Overrides TOML if set.")
	logDir     = flag.String("log-dir", "", "directory to place per-run JSON log (auto-named). Overrides TOML if set.")
	dryRun     = flag.Bool("dry-run", false, "print the assembled command without executing it")
)

func main() {
	// Generate run ID early so even setup failures are correlated
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		var exitErr *exitStatusError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		slog.Error("Launch failed", "error", err, "run_id", runID)
		os.Exit(1)
	}
}

// exitStatusError carries the child process exit code to main.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("%v: exit status %d", ErrTestsFailed, e.code)
}

// resolveLogLevel applies log-level precedence: the command-line flag when
// given, otherwise the TOML log section, otherwise info.
func resolveLogLevel(flagValue string, fileLevel config.LogLevel) config.LogLevel {
	if flagValue != "" {
		return config.LogLevel(flagValue)
	}
	if fileLevel != "" {
		return fileLevel
	}
	return config.LogLevelInfo
}

func run(runID string) error {
	flag.Parse()

	// Set up context with cancellation; the child JVM is killed when the
	// launcher receives SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *configPath == "" {
		return ErrConfigPathRequired
	}

	cfgLoader := config.NewLoader()
	spec, err := cfgLoader.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slogLevel, err := resolveLogLevel(*logLevel, spec.Log.Level).ToSlogLevel()
	if err != nil {
		return err
	}
	dir := spec.Log.Dir
	if *logDir != "" {
		dir = *logDir
	}

	logger, err := logging.Setup(logging.Options{
		Level:  slogLevel,
		LogDir: dir,
		RunID:  runID,
	})
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	proj := project.New(spec.Project.BaseDir,
		project.WithJavaTool(spec.Project.Java),
		project.WithJavaOptions(spec.Project.JavaOptions...))

	op := testng.NewOperationWithLogger(logger).FromProject(proj)
	spec.TestNG.Apply(op)

	// The suite descriptor must outlive command construction; clean it up
	// once the child process has exited.
	suites := suitefile.NewManager("")
	defer func() {
		if err := suites.Cleanup(); err != nil {
			logger.Warn("Failed to cleanup suite descriptors", "error", err, "run_id", runID)
		}
	}()

	args, err := op.CommandList(suites)
	if err != nil {
		return fmt.Errorf("failed to construct test command: %w", err)
	}

	if *dryRun {
		fmt.Println("[DRY RUN] Would execute:")
		fmt.Println("  " + strings.Join(args, " "))
		return nil
	}

	procExec := executor.NewDefaultExecutor()
	result, execErr := procExec.Execute(ctx, executor.Command{
		Path: args[0],
		Args: args[1:],
		Dir:  spec.Project.BaseDir,
	})
	if result != nil && result.ExitCode > 0 {
		logger.Error("Tests failed", "exit_code", result.ExitCode, "run_id", runID)
		return &exitStatusError{code: result.ExitCode}
	}
	if execErr != nil {
		return fmt.Errorf("error running tests: %w", execErr)
	}

	logger.Info("Tests completed", "run_id", runID)
	return nil
}
