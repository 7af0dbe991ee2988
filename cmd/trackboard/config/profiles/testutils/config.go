package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opst/trackboard/cmd/trackboard/config/profiles"
	"gopkg.in/yaml.v3"
)

// TempProfile creates a profile store holding only the profile.
//
// It returns the path of the store. The store is removed when the test ends.
func TempProfile(t *testing.T, name string, profile *profiles.Profile) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile")
	buf, err := yaml.Marshal(profiles.ProfileStore{name: profile})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}
