// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile creates path atomically: write runs against a temporary file in
// the same directory, which is synced and renamed over path only if write
// and every close step succeed. On failure the temporary file is removed and
// path is left untouched.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("WriteFile(%s): sync: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteFile(%s): close: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("WriteFile(%s): chmod: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("WriteFile(%s): rename: %w", path, err)
	}

	return nil
}
