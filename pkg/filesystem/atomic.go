package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/gen-remix/pkg/types"
)

// WriteFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so an existing file at path is either
// fully replaced or left untouched.
func WriteFileAtomic(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+".gen-remix-tmp")
	if err := fsys.WriteFile(tmpPath, data, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
