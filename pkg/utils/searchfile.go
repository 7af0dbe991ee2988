package utils

import (
	"errors"
	"os"
	"path/filepath"
)

var ErrFileNotFound = errors.New("file is not found")

// FindUpward looks for fileName in dir and its ancestors, nearest first.
//
// It returns the path of the found file, or ErrFileNotFound.
func FindUpward(dir string, fileName string) (string, error) {
	for {
		path := filepath.Join(dir, fileName)
		if s, err := os.Stat(path); err == nil && !s.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrFileNotFound
		}
		dir = parent
	}
}
