package testng

import (
	"strconv"

	"github.com/jvmtools/go-testng-launcher/internal/common"
)

// Options serializes the configured state into the wire flag set consumed by
// TestNG. Only explicitly set options appear; blank values are never stored.
// The map is rebuilt on every call, so callers may mutate the result freely.
func (op *Operation) Options() map[string]string {
	opts := make(map[string]string)

	putString(opts, flagDirectory, op.directory)
	putString(opts, flagDependencyInjectorFactory, op.dependencyInjectorFactory)
	putString(opts, flagListenerComparator, op.listenerComparator)
	putString(opts, flagListenerFactory, op.listenerFactory)
	putString(opts, flagReporter, op.reporter)
	putString(opts, flagTestJar, op.testJar)
	putString(opts, flagTestRunFactory, op.testRunFactory)
	putString(opts, flagThreadPoolFactoryClass, op.threadPoolFactoryClass)
	putString(opts, flagXMLPathInJar, op.xmlPathInJar)
	putString(opts, flagParallel, string(op.parallel))
	putString(opts, flagConfigFailurePolicy, string(op.failurePolicy))

	// Name-like options carry literal double quotes on the wire.
	putQuoted(opts, flagSuiteName, op.suiteName)
	putQuoted(opts, flagTestName, op.testName)

	putInt(opts, flagDataProviderThreadCount, op.dataProviderThreadCount)
	putInt(opts, flagThreadCount, op.threadCount)
	putInt(opts, flagSuiteThreadPoolSize, op.suiteThreadPoolSize)
	putInt(opts, flagPort, op.port)
	putInt(opts, flagLog, op.logLevel)
	putInt(opts, flagVerbose, op.verbosity)

	putBool(opts, flagAlwaysRunListeners, op.alwaysRunListeners)
	putBool(opts, flagFailWhenEverythingSkipped, op.failWhenEverythingSkipped)
	putBool(opts, flagGenerateResultsPerSuite, op.generateResultsPerSuite)
	putBool(opts, flagIgnoreMissedTestNames, op.ignoreMissedTestNames)
	putBool(opts, flagIncludeAllDataDriven, op.includeAllDataDriven)
	putBool(opts, flagJUnit, op.junit)
	putBool(opts, flagMixed, op.mixed)
	putBool(opts, flagPropagateDataProvider, op.propagateDataProvider)
	putBool(opts, flagUseDefaultListeners, op.useDefaultListeners)

	// Asymmetric flags: present only when enabled.
	if op.shareThreadPool {
		opts[flagShareThreadPool] = "true"
	}
	if op.useGlobalThreadPool {
		opts[flagUseGlobalThreadPool] = "true"
	}

	putJoined(opts, flagGroups, op.groups, ",", false)
	putJoined(opts, flagExcludeGroups, op.excludeGroups, ",", false)
	putJoined(opts, flagListener, op.listeners, ",", false)
	putJoined(opts, flagMethodSelectors, op.methodSelectors, ",", false)
	putJoined(opts, flagObjectFactory, op.objectFactories, ",", false)
	putJoined(opts, flagOverrideIncludedMethods, op.overrideIncludedMethods, ",", false)
	putJoined(opts, flagSpiListenersToSkip, op.spiListenersToSkip, ",", false)
	putJoined(opts, flagTestClass, op.testClasses, ",", false)
	putJoined(opts, flagTestNames, op.testNames, ",", true)
	// Source directories are the one semicolon-separated option.
	putJoined(opts, flagSourceDir, op.sourceDirs, ";", false)

	return opts
}

// Option returns the serialized value for a single wire flag and whether it
// is present.
func (op *Operation) Option(flag string) (string, bool) {
	v, ok := op.Options()[flag]
	return v, ok
}

func putString(opts map[string]string, flag, value string) {
	if value != "" {
		opts[flag] = value
	}
}

func putQuoted(opts map[string]string, flag, value string) {
	if value != "" {
		opts[flag] = `"` + value + `"`
	}
}

func putInt(opts map[string]string, flag string, value common.Optional[int]) {
	if value.IsSet() {
		opts[flag] = strconv.Itoa(value.Value())
	}
}

func putBool(opts map[string]string, flag string, value common.Optional[bool]) {
	if value.IsSet() {
		opts[flag] = strconv.FormatBool(value.Value())
	}
}

func putJoined(opts map[string]string, flag string, set stringSet, sep string, quote bool) {
	if len(set) > 0 {
		opts[flag] = set.join(sep, quote)
	}
}
