package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jvmtools/go-testng-launcher/internal/terminal"
)

// File permissions for log files
const logFilePerm = 0o600

// Options controls logger construction.
type Options struct {
	// Level is the minimum level for the console handler
	Level slog.Level

	// LogDir, when set, receives a per-run auto-named JSON log file
	LogDir string

	// RunID correlates all records of one launch
	RunID string
}

// Setup initializes the logging system and installs it as the slog default.
// It returns the configured logger so callers can pass it down explicitly.
func Setup(opts Options) (*slog.Logger, error) {
	var handlers []slog.Handler

	// 1. Human-readable summary handler (to stdout). Source locations are
	// only useful when a human is watching.
	detector := terminal.NewInteractiveDetector(terminal.DetectorOptions{})
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: detector.IsInteractive(),
	})
	handlers = append(handlers, textHandler)

	// 2. Machine-readable log handler (to file, per-run auto-named)
	if opts.LogDir != "" {
		info, err := os.Stat(opts.LogDir)
		if err != nil {
			return nil, fmt.Errorf("invalid log directory %s: %w", opts.LogDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("invalid log directory %s: not a directory", opts.LogDir)
		}

		hostname, _ := os.Hostname()
		timestamp := time.Now().Format("20060102T150405Z")
		logPath := filepath.Join(opts.LogDir, fmt.Sprintf("%s_%s_%s.json", hostname, timestamp, opts.RunID))
		logF, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm) // #nosec G304 - path is derived from a validated directory
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		jsonHandler := slog.NewJSONHandler(logF, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		enrichedHandler := jsonHandler.WithAttrs([]slog.Attr{
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.String("run_id", opts.RunID),
		})
		handlers = append(handlers, enrichedHandler)
	}

	logger := slog.New(NewMultiHandler(handlers...))
	slog.SetDefault(logger)

	logger.Info("Logger initialized",
		"log-level", opts.Level.String(),
		"log-dir", opts.LogDir,
		"run_id", opts.RunID)

	return logger, nil
}
