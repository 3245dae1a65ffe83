package ports

// OutputStore persists serialized query results.
//
//go:generate mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks
type OutputStore interface {
	// Write atomically writes data to path, creating parent directories
	// as needed. A failed write never leaves a truncated file behind.
	Write(path string, data []byte) error

	// PageDataExists reports whether the built page-data file for the
	// given page path is present under publicDir.
	PageDataExists(publicDir, pagePath string) bool
}
