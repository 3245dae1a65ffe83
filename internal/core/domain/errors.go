package domain

import "go.trai.ch/zerr"

var (
	// ErrQueryExecutionFailed is returned when the execution engine reports
	// structured errors for a query. It is fatal to the build.
	ErrQueryExecutionFailed = zerr.New("query execution failed")

	// ErrBuildFailed is returned when at least one query job failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrResultMarshalFailed is returned when a query result cannot be serialized.
	ErrResultMarshalFailed = zerr.New("failed to marshal query result")

	// ErrResultWriteFailed is returned when a query result cannot be written.
	ErrResultWriteFailed = zerr.New("failed to write query result")

	// ErrOutputDirCreateFailed is returned when an output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrCleanFailed is returned when build artifacts cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean build artifacts")

	// ErrEngineRequestFailed is returned when the query engine cannot be reached.
	ErrEngineRequestFailed = zerr.New("failed to reach the query engine")

	// ErrEngineDecodeFailed is returned when the engine response cannot be decoded.
	ErrEngineDecodeFailed = zerr.New("failed to decode engine response")

	// ErrConfigNotFound is returned when no lithos.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find lithos.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingEndpoint is returned when queries are configured without an engine endpoint.
	ErrMissingEndpoint = zerr.New("query engine endpoint is not configured")

	// ErrInvalidPagePath is returned when a page path does not start with a slash.
	ErrInvalidPagePath = zerr.New("page path must start with '/'")

	// ErrDuplicatePagePath is returned when two pages share the same path.
	ErrDuplicatePagePath = zerr.New("duplicate page path")

	// ErrMissingComponent is returned when a page or static query has no component.
	ErrMissingComponent = zerr.New("missing component path")

	// ErrMissingQueryID is returned when a static query has no identity.
	ErrMissingQueryID = zerr.New("static query is missing an id")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
