package domain

import (
	"path/filepath"
	"strings"
)

const (
	// CacheDirName is the name of the internal build cache directory.
	CacheDirName = ".cache"

	// StagingDirName is the directory under the cache holding staged page results.
	StagingDirName = "json"

	// PublicDirName is the name of the public output directory.
	PublicDirName = "public"

	// PageDataDirName is the directory under public holding built page data.
	PageDataDirName = "page-data"

	// PageDataFileName is the per-page data file written by the final pass.
	PageDataFileName = "page-data.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves every output path for one site root.
type Layout struct {
	// Root is the site's working directory.
	Root string
}

// CacheDir returns the internal build cache directory.
func (l Layout) CacheDir() string {
	return filepath.Join(l.Root, CacheDirName)
}

// StagingDir returns the staging directory for page query results.
func (l Layout) StagingDir() string {
	return filepath.Join(l.CacheDir(), StagingDirName)
}

// PageResultPath returns the staging file for a page query result. Path
// separators in the identity are flattened so every page lands in one
// directory.
func (l Layout) PageResultPath(id string) string {
	return filepath.Join(l.StagingDir(), strings.ReplaceAll(id, "/", "_")+".json")
}

// PublicDir returns the public output directory.
func (l Layout) PublicDir() string {
	return filepath.Join(l.Root, PublicDirName)
}

// StaticQueryDir returns the content-addressed output directory for
// non-page query results.
func (l Layout) StaticQueryDir() string {
	return filepath.Join(l.PublicDir(), PageDataDirName, "sq", "d")
}

// StaticResultPath returns the final output file for a non-page query
// result, addressed by the query's content hash rather than its identity.
func (l Layout) StaticResultPath(hash string) string {
	return filepath.Join(l.StaticQueryDir(), hash+".json")
}

// FixedPagePath flattens a page path into the directory name used under
// the page-data tree. The root path maps to "index".
func FixedPagePath(pagePath string) string {
	if pagePath == "/" {
		return "index"
	}
	return pagePath
}

// PageDataPath returns the built page-data file for a page under the
// given public directory.
func PageDataPath(publicDir, pagePath string) string {
	return filepath.Join(publicDir, PageDataDirName, FixedPagePath(pagePath), PageDataFileName)
}
