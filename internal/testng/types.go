// Package testng builds the command line used to launch the TestNG test
// runner as an external JVM process. The Operation type accumulates
// configuration through chained setters and materializes it into an ordered
// argument vector, synthesizing a temporary suite descriptor when the
// configuration does not name explicit suites or test classes.
package testng

import (
	"errors"
	"fmt"
	"strings"
)

// MainClass is the TestNG entry point passed to the JVM.
const MainClass = "org.testng.TestNG"

// Recognized TestNG command-line flags. These are wire names consumed by the
// TestNG process and must match verbatim, including case.
const (
	flagDirectory                 = "-d"
	flagExcludeGroups             = "-excludegroups"
	flagGroups                    = "-groups"
	flagMethods                   = "-methods"
	flagTestClass                 = "-testclass"
	flagTestNames                 = "-testnames"
	flagTestName                  = "-testname"
	flagSuiteName                 = "-suitename"
	flagParallel                  = "-parallel"
	flagThreadCount               = "-threadcount"
	flagDataProviderThreadCount   = "-dataproviderthreadcount"
	flagSuiteThreadPoolSize       = "-suitethreadpoolsize"
	flagConfigFailurePolicy       = "-configfailurepolicy"
	flagLog                       = "-log"
	flagVerbose                   = "-verbose"
	flagPort                      = "-port"
	flagJUnit                     = "-junit"
	flagMixed                     = "-mixed"
	flagListener                  = "-listener"
	flagListenerComparator        = "-listenercomparator"
	flagListenerFactory           = "-listenerfactory"
	flagMethodSelectors           = "-methodselectors"
	flagObjectFactory             = "-objectfactory"
	flagOverrideIncludedMethods   = "-overrideincludedmethods"
	flagSpiListenersToSkip        = "-spilistenerstoskip"
	flagSourceDir                 = "-sourcedir"
	flagXMLPathInJar              = "-xmlpathinjar"
	flagTestJar                   = "-testjar"
	flagTestRunFactory            = "-testrunfactory"
	flagThreadPoolFactoryClass    = "-threadpoolfactoryclass"
	flagAlwaysRunListeners        = "-alwaysrunlisteners"
	flagFailWhenEverythingSkipped = "-failwheneverythingskipped"
	flagGenerateResultsPerSuite   = "-generateResultsPerSuite"
	flagIgnoreMissedTestNames     = "-ignoreMissedTestNames"
	flagIncludeAllDataDriven      = "-includeAllDataDrivenTestsWhenSkipping"
	flagPropagateDataProvider     = "-propagateDataProviderFailureAsTestFailure"
	flagShareThreadPool           = "-shareThreadPoolForDataProviders"
	flagUseGlobalThreadPool       = "-useGlobalThreadPool"
	flagUseDefaultListeners       = "-usedefaultlisteners"
	flagDependencyInjectorFactory = "-dependencyinjectorfactory"
	flagReporter                  = "-reporter"
)

// Parallel selects the mechanism used to run tests in parallel threads.
type Parallel string

// Parallel mechanisms understood by TestNG.
const (
	ParallelMethods Parallel = "methods"
	ParallelTests   Parallel = "tests"
	ParallelClasses Parallel = "classes"
)

// ErrInvalidParallel is returned when an unrecognized parallel mechanism is provided
var ErrInvalidParallel = errors.New("invalid parallel mechanism")

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// This enables validation during TOML parsing.
func (p *Parallel) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch Parallel(s) {
	case ParallelMethods, ParallelTests, ParallelClasses:
		*p = Parallel(s)
		return nil
	case "":
		*p = ""
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: methods, tests, classes)", ErrInvalidParallel, string(text))
	}
}

// FailurePolicy controls whether TestNG continues or skips remaining tests
// after a failure in a configuration method.
type FailurePolicy string

// Failure policies understood by TestNG.
const (
	FailurePolicySkip     FailurePolicy = "skip"
	FailurePolicyContinue FailurePolicy = "continue"
)

// ErrInvalidFailurePolicy is returned when an unrecognized failure policy is provided
var ErrInvalidFailurePolicy = errors.New("invalid failure policy")

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *FailurePolicy) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch FailurePolicy(s) {
	case FailurePolicySkip, FailurePolicyContinue:
		*p = FailurePolicy(s)
		return nil
	case "":
		*p = ""
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: skip, continue)", ErrInvalidFailurePolicy, string(text))
	}
}
