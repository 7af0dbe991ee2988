package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorMessage is the error body the backend responds with.
//
// Either "detail" (for request-wide errors) or
// "non_field_errors" (for validation errors) is set.
type ErrorMessage struct {
	Detail         string   `json:"detail,omitempty"`
	NonFieldErrors []string `json:"non_field_errors,omitempty"`
}

func (em *ErrorMessage) UnmarshalJSON(bytes []byte) error {
	f := new(struct {
		Detail         *string  `json:"detail"`
		NonFieldErrors []string `json:"non_field_errors"`
	})
	if err := json.Unmarshal(bytes, f); err != nil {
		return err
	}

	if f.Detail == nil && len(f.NonFieldErrors) == 0 {
		return fmt.Errorf(`required field missing: "detail" or "non_field_errors"`)
	}
	if f.Detail != nil {
		em.Detail = *f.Detail
	}
	em.NonFieldErrors = f.NonFieldErrors

	return nil
}

func (e ErrorMessage) String() string {
	lines := []string{}
	if e.Detail != "" {
		lines = append(lines, e.Detail)
	}
	lines = append(lines, e.NonFieldErrors...)
	return strings.Join(lines, "\n")
}

func (e ErrorMessage) Error() string {
	return e.String()
}
