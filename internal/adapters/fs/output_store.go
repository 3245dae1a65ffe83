// Package fs implements filesystem persistence for query results.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputStore = (*OutputStore)(nil)

// OutputStore writes result files atomically and answers page-data
// existence checks.
type OutputStore struct{}

// NewOutputStore creates a new OutputStore.
func NewOutputStore() *OutputStore {
	return &OutputStore{}
}

// Write writes data to path through a temp file and rename, so a failed
// write never leaves a truncated file behind. Parent directories are
// created as needed.
func (s *OutputStore) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}
	return nil
}

// PageDataExists reports whether the built page-data file for pagePath is
// already present under publicDir.
func (s *OutputStore) PageDataExists(publicDir, pagePath string) bool {
	_, err := os.Stat(domain.PageDataPath(publicDir, pagePath))
	return err == nil
}
