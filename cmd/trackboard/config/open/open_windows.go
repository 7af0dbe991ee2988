//go:build windows

package open

import (
	"os"

	winacl "github.com/hectane/go-acl"
)

// NewSafeFile creates an empty file accessible only by the current user.
//
// The ACL is applied after creation, then the file is truncated.
func NewSafeFile(filepath string) (*os.File, error) {
	f, err := os.OpenFile(filepath, os.O_TRUNC|os.O_CREATE|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}
	if err := winacl.Chmod(filepath, os.FileMode(0600)); err != nil {
		f.Close()
		return nil, err
	}
	return emptied(f)
}
