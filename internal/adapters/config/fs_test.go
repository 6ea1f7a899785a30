package config_test

import (
	"io/fs"
	"os"
)

// fakeFS is an empty filesystem that records lookups.
type fakeFS struct {
	stats []string
}

func (f *fakeFS) Stat(path string) (fs.FileInfo, error) {
	f.stats = append(f.stats, path)
	return nil, os.ErrNotExist
}

func (f *fakeFS) ReadFile(string) ([]byte, error) {
	return nil, os.ErrNotExist
}

func (f *fakeFS) WriteFile(string, []byte) error {
	return os.ErrPermission
}
