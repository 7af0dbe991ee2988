package errors_test

import (
	"encoding/json"
	"testing"

	apierr "github.com/opst/trackboard/pkg/api/types/errors"
)

func TestErrorMessage_UnmarshalJSON(t *testing.T) {
	type then struct {
		err     bool
		message string
	}

	for name, testcase := range map[string]struct {
		when string
		then then
	}{
		"detail only": {
			when: `{"detail": "Authentication credentials were not provided."}`,
			then: then{message: "Authentication credentials were not provided."},
		},
		"non field errors": {
			when: `{"non_field_errors": ["name is taken", "too long"]}`,
			then: then{message: "name is taken\ntoo long"},
		},
		"neither": {
			when: `{"message": "hello"}`,
			then: then{err: true},
		},
		"not an object": {
			when: `"oops"`,
			then: then{err: true},
		},
	} {
		t.Run(name, func(t *testing.T) {
			var actual apierr.ErrorMessage
			err := json.Unmarshal([]byte(testcase.when), &actual)
			if testcase.then.err {
				if err == nil {
					t.Errorf("no error: %+v", actual)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if actual.Error() != testcase.then.message {
				t.Errorf("message: (actual, expected) = (%q, %q)", actual.Error(), testcase.then.message)
			}
		})
	}
}
