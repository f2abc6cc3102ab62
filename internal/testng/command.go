package testng

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jvmtools/go-testng-launcher/internal/suitefile"
)

// testOutputDir is the report directory default, relative to the build dir.
const testOutputDir = "test-output"

// CommandList materializes the configuration into the ordered argument
// vector used to launch TestNG. It validates the configuration, fills the
// report directory default, resolves the runtime classpath and, when neither
// suites nor test classes were configured, writes a default suite descriptor
// through the given manager. The manager retains the descriptor so the
// caller can delete it after the child process exits.
//
// Apart from the lazy report-directory default, CommandList does not mutate
// the operation; it can be invoked repeatedly, though each invocation with a
// synthesized suite creates a new descriptor file.
func (op *Operation) CommandList(suites *suitefile.Manager) ([]string, error) {
	if op.proj == nil {
		op.logger.Error("A project must be specified.")
		return nil, ErrProjectRequired
	}
	// NOTE: a configuration carrying only test classes fails this check
	// even though the positional logic below supports running without
	// suites. Kept as-is for compatibility with the original operation.
	if len(op.packages) == 0 && len(op.suites) == 0 && len(op.methods) == 0 {
		op.logger.Error("At least one package, XML suite or method is required.")
		return nil, ErrNoRunTarget
	}

	if op.directory == "" {
		op.directory = absPath(filepath.Join(op.proj.BuildDirectory(), testOutputDir))
	}

	args := []string{op.proj.JavaTool()}
	args = append(args, op.proj.JavaOptions()...)
	args = append(args, "-cp", op.classpath(), MainClass)

	opts := op.Options()
	flags := make([]string, 0, len(opts))
	for flag := range opts {
		flags = append(flags, flag)
	}
	sort.Strings(flags)
	for _, flag := range flags {
		args = append(args, flag, opts[flag])
	}

	if len(op.suites) > 0 {
		args = append(args, op.suites.values()...)
	} else if len(op.testClasses) == 0 {
		path, err := suites.WriteDefaultSuite(op.packages.values())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSuiteFileWrite, err)
		}
		args = append(args, path)
	}

	if len(op.methods) > 0 {
		args = append(args, flagMethods, op.methods.join(",", false))
	}

	op.logger.Info("TestNG command assembled", "command", strings.Join(args, " "))
	op.logger.Info("Report location", "dir", "file://"+op.directory)

	return args, nil
}

// classpath resolves the runtime classpath: explicit entries when any were
// configured, otherwise the project's test, compile and provided scopes plus
// the compiled main and test output directories.
func (op *Operation) classpath() string {
	sep := string(os.PathListSeparator)
	if len(op.testClasspath) > 0 {
		return strings.Join(op.testClasspath.values(), sep)
	}

	var entries []string
	entries = append(entries, op.proj.TestClasspathJars()...)
	entries = append(entries, op.proj.CompileClasspathJars()...)
	entries = append(entries, op.proj.ProvidedClasspathJars()...)
	entries = append(entries, op.proj.BuildMainDirectory(), op.proj.BuildTestDirectory())
	return strings.Join(entries, sep)
}
