package config

import "github.com/jvmtools/go-testng-launcher/internal/testng"

// Apply maps the run specification onto an operation. Absent keys leave the
// corresponding option untouched, so the operation's own validation rules
// (blank filtering, range checks) stay authoritative.
func (s *TestNGSpec) Apply(op *testng.Operation) *testng.Operation {
	op.Packages(s.Packages...)
	op.Suites(s.Suites...)
	op.Methods(s.Methods...)
	op.TestClass(s.TestClasses...)
	op.TestClasspath(s.TestClasspath...)

	op.Groups(s.Groups...)
	op.ExcludeGroups(s.ExcludeGroups...)
	op.Listener(s.Listeners...)
	op.MethodSelectors(s.MethodSelectors...)
	op.ObjectFactory(s.ObjectFactories...)
	op.OverrideIncludedMethods(s.OverrideIncludedMethods...)
	op.SpiListenersToSkip(s.SpiListenersToSkip...)
	op.TestNames(s.TestNames...)
	op.SourceDir(s.SourceDirs...)

	op.Directory(s.Directory)
	op.DependencyInjectorFactory(s.DependencyInjectorFactory)
	op.ListenerComparator(s.ListenerComparator)
	op.ListenerFactory(s.ListenerFactory)
	op.Reporter(s.Reporter)
	op.SuiteName(s.SuiteName)
	op.TestJar(s.TestJar)
	op.TestName(s.TestName)
	op.TestRunFactory(s.TestRunFactory)
	op.ThreadPoolFactoryClass(s.ThreadPoolFactoryClass)
	op.XMLPathInJar(s.XMLPathInJar)

	op.Parallel(s.Parallel)
	op.FailurePolicy(s.FailurePolicy)

	if s.DataProviderThreadCount != nil {
		op.DataProviderThreadCount(*s.DataProviderThreadCount)
	}
	if s.ThreadCount != nil {
		op.ThreadCount(*s.ThreadCount)
	}
	if s.SuiteThreadPoolSize != nil {
		op.SuiteThreadPoolSize(*s.SuiteThreadPoolSize)
	}
	if s.Port != nil {
		op.Port(*s.Port)
	}
	if s.Log != nil {
		op.Log(*s.Log)
	}
	if s.Verbose != nil {
		op.Verbose(*s.Verbose)
	}

	if s.AlwaysRunListeners != nil {
		op.AlwaysRunListeners(*s.AlwaysRunListeners)
	}
	if s.FailWhenEverythingSkipped != nil {
		op.FailWhenEverythingSkipped(*s.FailWhenEverythingSkipped)
	}
	if s.GenerateResultsPerSuite != nil {
		op.GenerateResultsPerSuite(*s.GenerateResultsPerSuite)
	}
	if s.IgnoreMissedTestNames != nil {
		op.IgnoreMissedTestNames(*s.IgnoreMissedTestNames)
	}
	if s.IncludeAllDataDrivenTests != nil {
		op.IncludeAllDataDrivenTestsWhenSkipping(*s.IncludeAllDataDrivenTests)
	}
	if s.JUnit != nil {
		op.JUnit(*s.JUnit)
	}
	if s.Mixed != nil {
		op.Mixed(*s.Mixed)
	}
	if s.PropagateDataProviderFails != nil {
		op.PropagateDataProviderFailureAsTestFailure(*s.PropagateDataProviderFails)
	}
	if s.UseDefaultListeners != nil {
		op.UseDefaultListeners(*s.UseDefaultListeners)
	}

	op.ShareThreadPoolForDataProviders(s.ShareThreadPoolForDataProviders)
	op.UseGlobalThreadPool(s.UseGlobalThreadPool)

	return op
}
