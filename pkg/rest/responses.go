package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apierr "github.com/opst/trackboard/pkg/api/types/errors"
	cerr "github.com/opst/trackboard/pkg/errors"
)

type MessageFor map[StatusCodeRange]string

// unmarshal http response which has json content.
//
// args:
//   - resp: http response to be processed.
//   - v: pointer which response should be decoded into.
//   - messageFor: title of error message for HTTP status code range.
//
// return:
//
//	error if...
//	- can not read response body
//	- response body is not shaped of v
//	- status code is not 2xx. For 401, the error wraps ErrUnauthorized.
func unmarshalJsonResponse(resp *http.Response, v any, messageFor MessageFor) error {
	if err := errorOf(resp, messageFor); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		message := fmt.Sprintf("unexpected error: %s (status code = %d)", err.Error(), resp.StatusCode)
		return cerr.NewCuiError(message, cerr.WithCause(err))
	}
	return nil
}

func unmarshalResponseDiscardingPayload(resp *http.Response, messageFor MessageFor) error {
	if err := errorOf(resp, messageFor); err != nil {
		return err
	}
	drain(resp.Body)
	return nil
}

// errorOf builds an error from non-2xx response. It returns nil for 2xx.
func errorOf(resp *http.Response, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	if scr == Status2xx {
		return nil
	}

	message, ok := messageFor[scr]
	if !ok {
		message = scr.String()
	}

	options := []cerr.CuiErrorOption{}
	if resp.StatusCode == http.StatusUnauthorized {
		message = "unauthorized. login again"
		options = append(options, cerr.WithCause(ErrUnauthorized))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.NewCuiError(
			fmt.Sprintf("%s\ncannot read server message: %s", message, err.Error()),
			append(options, cerr.WithVerbose(err.Error()))...,
		)
	}

	options = append(
		options,
		cerr.WithServerMessage(parseErrorMessage(body)),
		cerr.WithVerbose(fmt.Sprintf("status code = %d", resp.StatusCode)),
	)
	return cerr.NewCuiError(message, options...)
}

func parseErrorMessage(body []byte) string {
	em := new(apierr.ErrorMessage)
	if err := json.Unmarshal(body, em); err == nil {
		return em.String()
	}

	msg := new(struct {
		Message *string `json:"message"`
	})
	if err := json.Unmarshal(body, msg); err == nil && msg.Message != nil {
		return *msg.Message
	}

	return string(body)
}
