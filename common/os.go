package common

import (
	"os"
	"path/filepath"
)

func FileExists(path string) bool {
	return Error(os.Stat(path)) == nil
}

// CreateFile creates path for writing along with missing parent
// directories.
func CreateFile(path string) (*os.File, error) {
	parent := filepath.Dir(path)
	if !FileExists(parent) {
		err := os.MkdirAll(parent, 0o755)
		if err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
