package testng

import "errors"

// Error definitions for the testng package. All of them indicate that the
// launch command could not be constructed; none is retryable.
var (
	// ErrProjectRequired is returned when no host project has been bound
	// to the operation before command construction.
	ErrProjectRequired = errors.New("a project must be specified")

	// ErrNoRunTarget is returned when neither packages, suites nor methods
	// have been configured.
	ErrNoRunTarget = errors.New("at least one package, XML suite or method is required")

	// ErrSuiteFileWrite is returned when the default suite descriptor
	// cannot be written to disk.
	ErrSuiteFileWrite = errors.New("failed to write default suite descriptor")
)
