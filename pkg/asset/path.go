package asset

import "path/filepath"

// Resolve returns path unchanged if it is absolute, else joined onto dir.
func Resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
