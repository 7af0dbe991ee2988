//go:build !windows

package open

import "os"

// NewSafeFile creates an empty file with mode 0600.
//
// An existing file is truncated, keeping its mode.
func NewSafeFile(filepath string) (*os.File, error) {
	f, err := os.OpenFile(filepath, os.O_TRUNC|os.O_CREATE|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}
	return emptied(f)
}
