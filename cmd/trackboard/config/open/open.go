// Files readable only by the current user, for profiles and credentials.
package open

import (
	"errors"
	"os"
)

// WriteSafeFile replaces the content of the file at filepath with content.
//
// The file is created by NewSafeFile.
func WriteSafeFile(filepath string, content []byte) error {
	f, err := NewSafeFile(filepath)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	return errors.Join(err, f.Close())
}

// emptied truncates f and rewinds it. f is closed on failure.
func emptied(f *os.File) (*os.File, error) {
	if err := f.Truncate(0); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
