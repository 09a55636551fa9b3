package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// DiskTarget copies published files to a local directory.
type DiskTarget struct {
	dir string
}

// NewDiskTarget creates a target rooted at dir. The directory is
// created on demand.
func NewDiskTarget(dir string) *DiskTarget {
	return &DiskTarget{dir: dir}
}

// Put writes one file under the target directory.
func (t *DiskTarget) Put(ctx context.Context, key, contentType string, size int64, r io.Reader) error {
	path := filepath.Join(t.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// Dir returns the target directory.
func (t *DiskTarget) Dir() string {
	return t.dir
}
