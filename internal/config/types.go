// Package config loads the launcher's TOML run configuration and maps it
// onto a TestNG operation. The file is an immutable description of one run;
// command-line flags may override the logging section.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jvmtools/go-testng-launcher/internal/testng"
)

// LogLevel represents the logging level for the launcher.
// Valid values: debug, info, warn, error
type LogLevel string

const (
	// LogLevelDebug enables debug-level logging
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo enables info-level logging (default)
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn enables warning-level logging
	LogLevelWarn LogLevel = "warn"

	// LogLevelError enables error-level logging only
	LogLevelError LogLevel = "error"
)

// ErrInvalidLogLevel is returned when an invalid log level is provided
var ErrInvalidLogLevel = errors.New("invalid log level")

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// This enables validation during TOML parsing.
func (l *LogLevel) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch LogLevel(s) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		*l = LogLevel(s)
		return nil
	case "":
		// Empty string defaults to info level
		*l = LogLevelInfo
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, string(text))
	}
}

// ToSlogLevel converts LogLevel to slog.Level for use with the slog package.
func (l LogLevel) ToSlogLevel() (slog.Level, error) {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelDebug:
		return slog.LevelDebug, nil
	case LogLevelInfo, "":
		return slog.LevelInfo, nil
	case LogLevelWarn:
		return slog.LevelWarn, nil
	case LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, string(l))
	}
}

// RunSpec represents the root configuration structure loaded from a TOML
// file. All fields correspond directly to the file structure; optional
// scalars use pointers so an absent key stays distinguishable from a zero
// value.
type RunSpec struct {
	// Version specifies the configuration file version (e.g., "1.0")
	Version string `toml:"version"`

	// Project describes the host project layout
	Project ProjectSpec `toml:"project"`

	// Log configures launcher diagnostics
	Log LogSpec `toml:"log"`

	// TestNG holds the test-runner options
	TestNG TestNGSpec `toml:"testng"`
}

// ProjectSpec describes the host project the tests belong to.
type ProjectSpec struct {
	// BaseDir is the project root; build/ and lib/ are resolved under it
	BaseDir string `toml:"base_dir"`

	// Java overrides the JVM executable (default: JAVA_HOME or PATH)
	Java string `toml:"java"`

	// JavaOptions are extra JVM options emitted before the main class
	JavaOptions []string `toml:"java_options"`
}

// LogSpec configures launcher diagnostics.
type LogSpec struct {
	// Level is the minimum level written to the console
	Level LogLevel `toml:"level"`

	// Dir, when set, receives a per-run JSON log file
	Dir string `toml:"dir"`
}

// TestNGSpec holds the test-runner options. Field semantics mirror the
// Operation setters: absent keys leave the option unset, collections
// accumulate with set semantics, out-of-range numbers are ignored.
type TestNGSpec struct {
	Packages      []string `toml:"packages"`
	Suites        []string `toml:"suites"`
	Methods       []string `toml:"methods"`
	TestClasses   []string `toml:"test_classes"`
	TestClasspath []string `toml:"test_classpath"`

	Groups                  []string `toml:"groups"`
	ExcludeGroups           []string `toml:"exclude_groups"`
	Listeners               []string `toml:"listeners"`
	MethodSelectors         []string `toml:"method_selectors"`
	ObjectFactories         []string `toml:"object_factories"`
	OverrideIncludedMethods []string `toml:"override_included_methods"`
	SpiListenersToSkip      []string `toml:"spi_listeners_to_skip"`
	TestNames               []string `toml:"test_names"`
	SourceDirs              []string `toml:"source_dirs"`

	Directory                 string `toml:"directory"`
	DependencyInjectorFactory string `toml:"dependency_injector_factory"`
	ListenerComparator        string `toml:"listener_comparator"`
	ListenerFactory           string `toml:"listener_factory"`
	Reporter                  string `toml:"reporter"`
	SuiteName                 string `toml:"suite_name"`
	TestJar                   string `toml:"test_jar"`
	TestName                  string `toml:"test_name"`
	TestRunFactory            string `toml:"test_run_factory"`
	ThreadPoolFactoryClass    string `toml:"thread_pool_factory_class"`
	XMLPathInJar              string `toml:"xml_path_in_jar"`

	// Validated during parsing via TextUnmarshaler
	Parallel      testng.Parallel      `toml:"parallel"`
	FailurePolicy testng.FailurePolicy `toml:"failure_policy"`

	DataProviderThreadCount *int `toml:"data_provider_thread_count"`
	ThreadCount             *int `toml:"thread_count"`
	SuiteThreadPoolSize     *int `toml:"suite_thread_pool_size"`
	Port                    *int `toml:"port"`
	Log                     *int `toml:"log"`
	Verbose                 *int `toml:"verbose"`

	AlwaysRunListeners         *bool `toml:"always_run_listeners"`
	FailWhenEverythingSkipped  *bool `toml:"fail_when_everything_skipped"`
	GenerateResultsPerSuite    *bool `toml:"generate_results_per_suite"`
	IgnoreMissedTestNames      *bool `toml:"ignore_missed_test_names"`
	IncludeAllDataDrivenTests  *bool `toml:"include_all_data_driven_tests_when_skipping"`
	JUnit                      *bool `toml:"junit"`
	Mixed                      *bool `toml:"mixed"`
	PropagateDataProviderFails *bool `toml:"propagate_data_provider_failure_as_test_failure"`
	UseDefaultListeners        *bool `toml:"use_default_listeners"`

	ShareThreadPoolForDataProviders bool `toml:"share_thread_pool_for_data_providers"`
	UseGlobalThreadPool             bool `toml:"use_global_thread_pool"`
}
