package testng

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jvmtools/go-testng-launcher/internal/common"
	"github.com/jvmtools/go-testng-launcher/internal/project"
)

// Operation accumulates TestNG launch configuration. It is a mutable builder
// used by a single build step on a single thread; setters return the
// receiver for chaining. Scalar options follow last-write-wins semantics,
// collection options accumulate with set semantics.
type Operation struct {
	logger *slog.Logger
	proj   project.Project

	// Scalar string options. Stored trimmed; blank input is a no-op.
	directory                 string
	dependencyInjectorFactory string
	listenerComparator        string
	listenerFactory           string
	reporter                  string
	suiteName                 string
	testJar                   string
	testName                  string
	testRunFactory            string
	threadPoolFactoryClass    string
	xmlPathInJar              string

	parallel      Parallel
	failurePolicy FailurePolicy

	// Numeric options. Negative input (or port < 1) is silently ignored.
	dataProviderThreadCount common.Optional[int]
	threadCount             common.Optional[int]
	suiteThreadPoolSize     common.Optional[int]
	port                    common.Optional[int]
	logLevel                common.Optional[int]
	verbosity               common.Optional[int]

	// Boolean options. These are emitted with their explicit true/false
	// value whenever they have been set.
	alwaysRunListeners        common.Optional[bool]
	failWhenEverythingSkipped common.Optional[bool]
	generateResultsPerSuite   common.Optional[bool]
	ignoreMissedTestNames     common.Optional[bool]
	includeAllDataDriven      common.Optional[bool]
	junit                     common.Optional[bool]
	mixed                     common.Optional[bool]
	propagateDataProvider     common.Optional[bool]
	useDefaultListeners       common.Optional[bool]

	// Asymmetric booleans: TestNG treats the presence of the flag as
	// enabling the behavior, so they are emitted only when true.
	shareThreadPool     bool
	useGlobalThreadPool bool

	// Collection-valued options.
	groups                  stringSet
	excludeGroups           stringSet
	listeners               stringSet
	methodSelectors         stringSet
	objectFactories         stringSet
	overrideIncludedMethods stringSet
	spiListenersToSkip      stringSet
	testClasses             stringSet
	testNames               stringSet
	sourceDirs              stringSet

	// Run-scope sets consumed outside the option map.
	packages      stringSet
	suites        stringSet
	methods       stringSet
	testClasspath stringSet
}

// NewOperation creates an Operation that reports diagnostics through the
// default slog logger.
func NewOperation() *Operation {
	return NewOperationWithLogger(slog.Default())
}

// NewOperationWithLogger creates an Operation with an explicit diagnostic
// sink, so callers and tests can capture emitted messages.
func NewOperationWithLogger(logger *slog.Logger) *Operation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Operation{
		logger:                  logger,
		groups:                  newStringSet(),
		excludeGroups:           newStringSet(),
		listeners:               newStringSet(),
		methodSelectors:         newStringSet(),
		objectFactories:         newStringSet(),
		overrideIncludedMethods: newStringSet(),
		spiListenersToSkip:      newStringSet(),
		testClasses:             newStringSet(),
		testNames:               newStringSet(),
		sourceDirs:              newStringSet(),
		packages:                newStringSet(),
		suites:                  newStringSet(),
		methods:                 newStringSet(),
		testClasspath:           newStringSet(),
	}
}

// FromProject binds the host project providing build directories, classpath
// scopes and the JVM locator.
func (op *Operation) FromProject(proj project.Project) *Operation {
	op.proj = proj
	return op
}

// AlwaysRunListeners sets whether method invocation listeners run even for
// skipped methods.
func (op *Operation) AlwaysRunListeners(run bool) *Operation {
	op.alwaysRunListeners = common.NewOptional(run)
	return op
}

// DataProviderThreadCount sets the default maximum number of threads used
// by data providers when running tests in parallel. Negative counts are
// ignored.
func (op *Operation) DataProviderThreadCount(count int) *Operation {
	if count >= 0 {
		op.dataProviderThreadCount = common.NewOptional(count)
	}
	return op
}

// DependencyInjectorFactory sets the dependency injector factory
// implementation TestNG should use.
func (op *Operation) DependencyInjectorFactory(factory string) *Operation {
	op.dependencyInjectorFactory = trimOrKeep(op.dependencyInjectorFactory, factory)
	return op
}

// Directory sets the directory where reports are generated. The path is
// normalized to its absolute form before storage. Default is
// <build dir>/test-output.
func (op *Operation) Directory(path string) *Operation {
	path = strings.TrimSpace(path)
	if path == "" {
		return op
	}
	op.directory = absPath(path)
	return op
}

// ExcludeGroups adds groups to exclude from the run.
func (op *Operation) ExcludeGroups(groups ...string) *Operation {
	op.excludeGroups.add(groups...)
	return op
}

// FailWhenEverythingSkipped sets whether TestNG fails when all tests were
// skipped and nothing ran.
func (op *Operation) FailWhenEverythingSkipped(fail bool) *Operation {
	op.failWhenEverythingSkipped = common.NewOptional(fail)
	return op
}

// FailurePolicy sets whether TestNG continues or skips remaining tests after
// a configuration method failure.
func (op *Operation) FailurePolicy(policy FailurePolicy) *Operation {
	s := strings.ToLower(strings.TrimSpace(string(policy)))
	if s != "" {
		op.failurePolicy = FailurePolicy(s)
	}
	return op
}

// GenerateResultsPerSuite sets whether results are generated per suite.
func (op *Operation) GenerateResultsPerSuite(perSuite bool) *Operation {
	op.generateResultsPerSuite = common.NewOptional(perSuite)
	return op
}

// Groups adds groups to include in the run.
func (op *Operation) Groups(groups ...string) *Operation {
	op.groups.add(groups...)
	return op
}

// IgnoreMissedTestNames sets whether test names given via TestNames that do
// not exist are ignored rather than failing the run.
func (op *Operation) IgnoreMissedTestNames(ignore bool) *Operation {
	op.ignoreMissedTestNames = common.NewOptional(ignore)
	return op
}

// IncludeAllDataDrivenTestsWhenSkipping sets whether all iterations of a
// data-driven test are reported as individual skips on upstream failures.
func (op *Operation) IncludeAllDataDrivenTestsWhenSkipping(include bool) *Operation {
	op.includeAllDataDriven = common.NewOptional(include)
	return op
}

// JUnit enables or disables JUnit mode.
func (op *Operation) JUnit(junit bool) *Operation {
	op.junit = common.NewOptional(junit)
	return op
}

// Listener adds class names implementing ITestListener or ISuiteListener.
func (op *Operation) Listener(listeners ...string) *Operation {
	op.listeners.add(listeners...)
	return op
}

// ListenerComparator sets the comparator used to order listeners.
func (op *Operation) ListenerComparator(comparator string) *Operation {
	op.listenerComparator = trimOrKeep(op.listenerComparator, comparator)
	return op
}

// ListenerFactory sets the factory used to instantiate listeners.
func (op *Operation) ListenerFactory(factory string) *Operation {
	op.listenerFactory = trimOrKeep(op.listenerFactory, factory)
	return op
}

// Log sets the level of verbosity. Negative levels are ignored.
func (op *Operation) Log(level int) *Operation {
	if level >= 0 {
		op.logLevel = common.NewOptional(level)
	}
	return op
}

// MethodSelectors adds class names implementing IMethodSelector, e.g.
// "com.example.Selector1:3".
func (op *Operation) MethodSelectors(selectors ...string) *Operation {
	op.methodSelectors.add(selectors...)
	return op
}

// Methods adds individual methods to run, e.g. "com.example.Foo.f1".
func (op *Operation) Methods(methods ...string) *Operation {
	op.methods.add(methods...)
	return op
}

// Mixed enables mixed mode, which autodetects the type of each test and runs
// it with the appropriate runner.
func (op *Operation) Mixed(mixed bool) *Operation {
	op.mixed = common.NewOptional(mixed)
	return op
}

// ObjectFactory adds class names implementing ITestRunnerFactory.
func (op *Operation) ObjectFactory(factories ...string) *Operation {
	op.objectFactories.add(factories...)
	return op
}

// OverrideIncludedMethods adds fully qualified method names overriding the
// included methods.
func (op *Operation) OverrideIncludedMethods(methods ...string) *Operation {
	op.overrideIncludedMethods.add(methods...)
	return op
}

// Packages adds packages to include in the run. A package name ending with
// .* includes subpackages. Required if no suites are specified.
func (op *Operation) Packages(names ...string) *Operation {
	op.packages.add(names...)
	return op
}

// Parallel sets the mechanism used to allocate parallel threads.
func (op *Operation) Parallel(mechanism Parallel) *Operation {
	s := strings.ToLower(strings.TrimSpace(string(mechanism)))
	if s != "" {
		op.parallel = Parallel(s)
	}
	return op
}

// Port sets the port number. Ports below 1 are ignored.
func (op *Operation) Port(port int) *Operation {
	if port >= 1 {
		op.port = common.NewOptional(port)
	}
	return op
}

// PropagateDataProviderFailureAsTestFailure sets whether data provider
// failures count as test failures.
func (op *Operation) PropagateDataProviderFailureAsTestFailure(propagate bool) *Operation {
	op.propagateDataProvider = common.NewOptional(propagate)
	return op
}

// Reporter sets the extended configuration for a custom report listener.
func (op *Operation) Reporter(reporter string) *Operation {
	op.reporter = trimOrKeep(op.reporter, reporter)
	return op
}

// ShareThreadPoolForDataProviders enables sharing the thread pool with data
// providers. Unlike the other boolean options this flag is emitted only when
// true; passing false leaves it absent.
func (op *Operation) ShareThreadPoolForDataProviders(share bool) *Operation {
	op.shareThreadPool = share
	return op
}

// SourceDir adds directories containing javadoc-annotated test sources.
func (op *Operation) SourceDir(dirs ...string) *Operation {
	op.sourceDirs.add(dirs...)
	return op
}

// SpiListenersToSkip adds fully qualified class names of listeners to skip
// from being wired in via service loaders.
func (op *Operation) SpiListenersToSkip(listeners ...string) *Operation {
	op.spiListenersToSkip.add(listeners...)
	return op
}

// SuiteName sets the default suite name used when the suite definition does
// not specify one. The stored value is wrapped in literal double quotes.
func (op *Operation) SuiteName(name string) *Operation {
	op.suiteName = trimOrKeep(op.suiteName, name)
	return op
}

// SuiteThreadPoolSize sets the size of the thread pool used to run suites.
// Negative sizes are ignored.
func (op *Operation) SuiteThreadPoolSize(size int) *Operation {
	if size >= 0 {
		op.suiteThreadPoolSize = common.NewOptional(size)
	}
	return op
}

// Suites adds XML suite files to run.
func (op *Operation) Suites(suites ...string) *Operation {
	op.suites.add(suites...)
	return op
}

// TestClass adds test class names, e.g. "org.foo.Test1".
func (op *Operation) TestClass(classes ...string) *Operation {
	op.testClasses.add(classes...)
	return op
}

// TestClasspath adds explicit classpath entries used to run tests. When any
// are set they replace the classpath derived from the project.
func (op *Operation) TestClasspath(entries ...string) *Operation {
	op.testClasspath.add(entries...)
	return op
}

// TestJar sets a jar file containing test classes. A testng.xml found at the
// root of the jar is used, otherwise all test classes in the jar run.
func (op *Operation) TestJar(jar string) *Operation {
	op.testJar = trimOrKeep(op.testJar, jar)
	return op
}

// TestName sets the default test name used when the suite definition does
// not specify one. The stored value is wrapped in literal double quotes.
func (op *Operation) TestName(name string) *Operation {
	op.testName = trimOrKeep(op.testName, name)
	return op
}

// TestNames adds names of <test> tags to run; only matching tests execute.
func (op *Operation) TestNames(names ...string) *Operation {
	op.testNames.add(names...)
	return op
}

// TestRunFactory sets the factory used to create tests.
func (op *Operation) TestRunFactory(factory string) *Operation {
	op.testRunFactory = trimOrKeep(op.testRunFactory, factory)
	return op
}

// ThreadCount sets the default maximum number of threads used to run tests
// in parallel. Negative counts are ignored.
func (op *Operation) ThreadCount(count int) *Operation {
	if count >= 0 {
		op.threadCount = common.NewOptional(count)
	}
	return op
}

// ThreadPoolFactoryClass sets the thread pool executor factory
// implementation TestNG should use.
func (op *Operation) ThreadPoolFactoryClass(factoryClass string) *Operation {
	op.threadPoolFactoryClass = trimOrKeep(op.threadPoolFactoryClass, factoryClass)
	return op
}

// UseDefaultListeners sets whether the default listeners are used.
func (op *Operation) UseDefaultListeners(use bool) *Operation {
	op.useDefaultListeners = common.NewOptional(use)
	return op
}

// UseGlobalThreadPool enables using a global thread pool. Like
// ShareThreadPoolForDataProviders this flag is emitted only when true.
func (op *Operation) UseGlobalThreadPool(use bool) *Operation {
	op.useGlobalThreadPool = use
	return op
}

// Verbose sets the level of verbosity. Negative levels are ignored.
func (op *Operation) Verbose(level int) *Operation {
	if level >= 0 {
		op.verbosity = common.NewOptional(level)
	}
	return op
}

// XMLPathInJar sets the path to a valid XML file inside the test jar. The
// value is kept as given since it addresses a jar entry, not the local
// filesystem.
func (op *Operation) XMLPathInJar(path string) *Operation {
	op.xmlPathInJar = trimOrKeep(op.xmlPathInJar, path)
	return op
}

// PackageNames returns the configured packages, sorted.
func (op *Operation) PackageNames() []string {
	return op.packages.values()
}

// SuiteFiles returns the configured suite files, sorted.
func (op *Operation) SuiteFiles() []string {
	return op.suites.values()
}

// MethodNames returns the configured methods, sorted.
func (op *Operation) MethodNames() []string {
	return op.methods.values()
}

// ClasspathEntries returns the explicit classpath entries, sorted.
func (op *Operation) ClasspathEntries() []string {
	return op.testClasspath.values()
}

// trimOrKeep returns the trimmed new value, or the current value when the
// new one is blank. Blank input to a string option is a no-op, not an error.
func trimOrKeep(current, next string) string {
	next = strings.TrimSpace(next)
	if next == "" {
		return current
	}
	return next
}

// absPath converts path to its absolute form, keeping the original path when
// resolution fails (Abs only fails when the working directory is gone).
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
