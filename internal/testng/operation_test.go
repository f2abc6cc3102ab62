package testng

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanOptions(t *testing.T) {
	tests := []struct {
		name string
		flag string
		set  func(op *Operation, v bool) *Operation
	}{
		{"alwaysRunListeners", "-alwaysrunlisteners", (*Operation).AlwaysRunListeners},
		{"failWhenEverythingSkipped", "-failwheneverythingskipped", (*Operation).FailWhenEverythingSkipped},
		{"generateResultsPerSuite", "-generateResultsPerSuite", (*Operation).GenerateResultsPerSuite},
		{"ignoreMissedTestNames", "-ignoreMissedTestNames", (*Operation).IgnoreMissedTestNames},
		{"includeAllDataDrivenTestsWhenSkipping", "-includeAllDataDrivenTestsWhenSkipping", (*Operation).IncludeAllDataDrivenTestsWhenSkipping},
		{"junit", "-junit", (*Operation).JUnit},
		{"mixed", "-mixed", (*Operation).Mixed},
		{"propagateDataProviderFailureAsTestFailure", "-propagateDataProviderFailureAsTestFailure", (*Operation).PropagateDataProviderFailureAsTestFailure},
		{"useDefaultListeners", "-usedefaultlisteners", (*Operation).UseDefaultListeners},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewOperation()
			_, ok := op.Option(tt.flag)
			assert.False(t, ok, "flag should be absent before set")

			tt.set(op, false)
			v, ok := op.Option(tt.flag)
			assert.True(t, ok)
			assert.Equal(t, "false", v, "explicit false must be stored")

			tt.set(op, true)
			v, _ = op.Option(tt.flag)
			assert.Equal(t, "true", v)
		})
	}
}

func TestAsymmetricBooleanOptions(t *testing.T) {
	tests := []struct {
		name string
		flag string
		set  func(op *Operation, v bool) *Operation
	}{
		{"shareThreadPoolForDataProviders", "-shareThreadPoolForDataProviders", (*Operation).ShareThreadPoolForDataProviders},
		{"useGlobalThreadPool", "-useGlobalThreadPool", (*Operation).UseGlobalThreadPool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewOperation()
			tt.set(op, true)
			v, ok := op.Option(tt.flag)
			assert.True(t, ok)
			assert.Equal(t, "true", v)

			// Unlike the other booleans, false removes the flag entirely.
			tt.set(op, false)
			_, ok = op.Option(tt.flag)
			assert.False(t, ok, "flag must be absent when false, not stored as \"false\"")
		})
	}
}

func TestNumericOptions(t *testing.T) {
	tests := []struct {
		name string
		flag string
		min  int
		set  func(op *Operation, v int) *Operation
	}{
		{"dataProviderThreadCount", "-dataproviderthreadcount", 0, (*Operation).DataProviderThreadCount},
		{"threadCount", "-threadcount", 0, (*Operation).ThreadCount},
		{"suiteThreadPoolSize", "-suitethreadpoolsize", 0, (*Operation).SuiteThreadPoolSize},
		{"port", "-port", 1, (*Operation).Port},
		{"log", "-log", 0, (*Operation).Log},
		{"verbose", "-verbose", 0, (*Operation).Verbose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewOperation()

			// Below the minimum is silently ignored.
			tt.set(op, tt.min-1)
			_, ok := op.Option(tt.flag)
			assert.False(t, ok, "out-of-range value must leave the flag absent")

			tt.set(op, tt.min)
			v, ok := op.Option(tt.flag)
			assert.True(t, ok)
			assert.Equal(t, strconv.Itoa(tt.min), v)

			tt.set(op, 42)
			v, _ = op.Option(tt.flag)
			assert.Equal(t, "42", v, "last write wins")
		})
	}
}

func TestStringOptions(t *testing.T) {
	tests := []struct {
		name string
		flag string
		set  func(op *Operation, v string) *Operation
	}{
		{"dependencyInjectorFactory", "-dependencyinjectorfactory", (*Operation).DependencyInjectorFactory},
		{"listenerComparator", "-listenercomparator", (*Operation).ListenerComparator},
		{"listenerFactory", "-listenerfactory", (*Operation).ListenerFactory},
		{"reporter", "-reporter", (*Operation).Reporter},
		{"testJar", "-testjar", (*Operation).TestJar},
		{"testRunFactory", "-testrunfactory", (*Operation).TestRunFactory},
		{"threadPoolFactoryClass", "-threadpoolfactoryclass", (*Operation).ThreadPoolFactoryClass},
		{"xmlPathInJar", "-xmlpathinjar", (*Operation).XMLPathInJar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewOperation()

			// Blank input is a no-op, not an error.
			tt.set(op, "   ")
			_, ok := op.Option(tt.flag)
			assert.False(t, ok)

			tt.set(op, " foo ")
			v, ok := op.Option(tt.flag)
			assert.True(t, ok)
			assert.Equal(t, "foo", v, "value must be trimmed")

			tt.set(op, "")
			v, _ = op.Option(tt.flag)
			assert.Equal(t, "foo", v, "blank input must not clear a stored value")
		})
	}
}

func TestQuotedNameOptions(t *testing.T) {
	op := NewOperation().SuiteName("All Packages")
	v, ok := op.Option("-suitename")
	require.True(t, ok)
	assert.Equal(t, `"All Packages"`, v)

	op = NewOperation().TestName("foo")
	v, ok = op.Option("-testname")
	require.True(t, ok)
	assert.Equal(t, `"foo"`, v)
}

func TestEnumOptions(t *testing.T) {
	op := NewOperation().Parallel(ParallelTests)
	v, _ := op.Option("-parallel")
	assert.Equal(t, "tests", v)

	op.Parallel("METHODS")
	v, _ = op.Option("-parallel")
	assert.Equal(t, "methods", v, "enum values are lower-cased before storage")

	op = NewOperation().FailurePolicy(FailurePolicyContinue)
	v, _ = op.Option("-configfailurepolicy")
	assert.Equal(t, "continue", v)

	op.FailurePolicy("SKIP")
	v, _ = op.Option("-configfailurepolicy")
	assert.Equal(t, "skip", v)
}

func TestJoinedCollectionOptions(t *testing.T) {
	tests := []struct {
		name string
		flag string
		sep  string
		set  func(op *Operation, v ...string) *Operation
	}{
		{"groups", "-groups", ",", (*Operation).Groups},
		{"excludeGroups", "-excludegroups", ",", (*Operation).ExcludeGroups},
		{"listener", "-listener", ",", (*Operation).Listener},
		{"methodSelectors", "-methodselectors", ",", (*Operation).MethodSelectors},
		{"objectFactory", "-objectfactory", ",", (*Operation).ObjectFactory},
		{"overrideIncludedMethods", "-overrideincludedmethods", ",", (*Operation).OverrideIncludedMethods},
		{"spiListenersToSkip", "-spilistenerstoskip", ",", (*Operation).SpiListenersToSkip},
		{"testClass", "-testclass", ",", (*Operation).TestClass},
		{"sourceDir", "-sourcedir", ";", (*Operation).SourceDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := NewOperation()

			// Blanks are filtered, duplicates collapse, output is sorted.
			tt.set(op, "foo", " ", "bar", "", "foo")
			v, ok := op.Option(tt.flag)
			require.True(t, ok)
			assert.Equal(t, "bar"+tt.sep+"foo", v)

			// Collections accumulate across calls.
			tt.set(op, "baz")
			v, _ = op.Option(tt.flag)
			assert.Equal(t, "bar"+tt.sep+"baz"+tt.sep+"foo", v)
		})
	}
}

func TestJoinedCollectionAllBlank(t *testing.T) {
	op := NewOperation().Groups("", "   ")
	_, ok := op.Option("-groups")
	assert.False(t, ok, "all-blank input must not store an empty value")
}

func TestTestNamesAreQuoted(t *testing.T) {
	op := NewOperation().TestNames("foo", "bar")
	v, ok := op.Option("-testnames")
	require.True(t, ok)
	assert.Equal(t, `"bar","foo"`, v)
}

func TestRunScopeSets(t *testing.T) {
	op := NewOperation().
		Packages("com.example", "", "com.example", "com.other").
		Suites("a.xml", "a.xml", " ").
		Methods("com.example.Foo.f1", "com.example.Bar.f2").
		TestClasspath("lib/test/*", "build/main", "lib/test/*")

	assert.Equal(t, []string{"com.example", "com.other"}, op.PackageNames())
	assert.Equal(t, []string{"a.xml"}, op.SuiteFiles())
	assert.Equal(t, []string{"com.example.Bar.f2", "com.example.Foo.f1"}, op.MethodNames())
	assert.Equal(t, []string{"build/main", "lib/test/*"}, op.ClasspathEntries())
}

func TestDirectoryNormalizedToAbsolute(t *testing.T) {
	op := NewOperation().Directory("reports")
	v, ok := op.Option("-d")
	require.True(t, ok)

	abs, err := filepath.Abs("reports")
	require.NoError(t, err)
	assert.Equal(t, abs, v)

	// Blank input is a no-op.
	op.Directory("  ")
	v, _ = op.Option("-d")
	assert.Equal(t, abs, v)
}

func TestOptionsMapIsACopy(t *testing.T) {
	op := NewOperation().Groups("foo")
	opts := op.Options()
	opts["-groups"] = "mutated"

	v, _ := op.Option("-groups")
	assert.Equal(t, "foo", v)
}
