// Credentials for the backend, taken from the environment.
//
// Variables:
//
//   - TRACKBOARD_TOKEN: api token, sent as "Authorization: token ..."
//   - TRACKBOARD_CSRF_TOKEN: sent as "X-CSRFToken" with mutating requests
//
// dotenv files can provide them too. Environment variables take precedence.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/opst/trackboard/cmd/trackboard/config/open"
)

const (
	EnvToken     = "TRACKBOARD_TOKEN"
	EnvCSRFToken = "TRACKBOARD_CSRF_TOKEN"
)

type Credentials struct {
	Token     string `env:"TRACKBOARD_TOKEN"`
	CSRFToken string `env:"TRACKBOARD_CSRF_TOKEN"`
}

// Load reads credentials from os.Environ and dotenv files.
//
// Missing dotenv files are skipped. When a variable is in more than one dotenv file,
// the former one wins.
func Load(dotenvs ...string) (Credentials, error) {
	return LoadFrom(os.Environ(), dotenvs...)
}

// LoadFrom reads credentials from environ (formatted as "KEY=VALUE") and dotenv files.
func LoadFrom(environ []string, dotenvs ...string) (Credentials, error) {
	vars := map[string]string{}
	for _, path := range dotenvs {
		m, err := godotenv.Read(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return Credentials{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for k, v := range m {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	for k, v := range env.ToMap(environ) {
		vars[k] = v
	}

	c := Credentials{}
	if err := env.ParseWithOptions(&c, env.Options{Environment: vars}); err != nil {
		return Credentials{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Save writes non-empty credentials into the dotenv file at path.
//
// The file is readable only by the current user.
func (c Credentials) Save(path string) error {
	vars := map[string]string{}
	if c.Token != "" {
		vars[EnvToken] = c.Token
	}
	if c.CSRFToken != "" {
		vars[EnvCSRFToken] = c.CSRFToken
	}
	content, err := godotenv.Marshal(vars)
	if err != nil {
		return err
	}
	return open.WriteSafeFile(path, []byte(content+"\n"))
}
