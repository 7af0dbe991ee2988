package rest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/opst/trackboard/pkg/utils"
)

// Credentials gives tokens to be sent with requests.
type Credentials interface {
	// Token for "Authorization: token ..." header. Empty if not authenticated.
	Token() string

	// CSRFToken for "X-CSRFToken" header of mutating requests.
	CSRFToken() string
}

var (
	// the backend rejected credentials (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidApiRoot = errors.New("api root is invalid")
)

type Client interface {
	// Get sends GET request for path with query, and decodes the JSON response into v.
	//
	// Args
	//
	// - context.Context
	//
	// - string: path under the api root, like "/alice/mnist/builds"
	//
	// - url.Values: query. nil or empty query is not sent.
	//
	// - any: pointer to be decoded into.
	//
	// Returns
	//
	// - error: transport error, or CUIError for non-2xx response or malformed body.
	// When the response is 401, the error wraps ErrUnauthorized.
	Get(ctx context.Context, path string, query url.Values, v any) error

	// Post sends POST request without body for path.
	//
	// If v is not nil, the JSON response is decoded into v. Otherwise, it is discarded.
	Post(ctx context.Context, path string, v any) error

	// Delete sends DELETE request for path. The response is discarded.
	Delete(ctx context.Context, path string) error
}

type client struct {
	httpclient *http.Client
	api        string
	creds      Credentials
}

// create new client for the backend.
//
// # Args
//
// - apiRoot: URL of the api root, like "https://example.com/api/v1"
//
// - creds: credentials to be sent
//
// - cacerts: base64 encoded PEM of CA certificates to be trusted
//
// # Return
//
// - Client
//
// - error: If apiRoot is not http(s) URL, ErrInvalidApiRoot is returned.
func NewClient(apiRoot string, creds Credentials, cacerts ...string) (Client, error) {
	u, err := url.Parse(apiRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidApiRoot, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme should be http or https: %s", ErrInvalidApiRoot, apiRoot)
	}

	httpclient, err := trustCa(new(http.Client), cacerts)
	if err != nil {
		return nil, err
	}

	return &client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(apiRoot, "/"),
		creds:      creds,
	}, nil
}

// build URL with path
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return strings.TrimPrefix(p, "/")
	})

	return strings.Join(append([]string{c.api}, path...), "/")
}

func (c *client) newRequest(ctx context.Context, method string, path string, query url.Values) (*http.Request, error) {
	u := c.apipath(path)
	if q := query.Encode(); q != "" {
		u += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}
	if method != http.MethodGet {
		if csrf := c.creds.CSRFToken(); csrf != "" {
			req.Header.Set("X-CSRFToken", csrf)
		}
	}
	if rid, ok := RequestIdOf(ctx); ok {
		req.Header.Set("X-Request-Id", rid)
	}
	return req, nil
}

func (c *client) Get(ctx context.Context, path string, query url.Values, v any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalJsonResponse(
		resp, v,
		MessageFor{
			Status4xx: fmt.Sprintf("failed to get %s", path),
			Status5xx: "server error",
		},
	)
}

func (c *client) Post(ctx context.Context, path string, v any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	mf := MessageFor{
		Status4xx: fmt.Sprintf("request for %s is rejected", path),
		Status5xx: "server error",
	}
	if v == nil {
		return unmarshalResponseDiscardingPayload(resp, mf)
	}
	return unmarshalJsonResponse(resp, v, mf)
}

func (c *client) Delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: fmt.Sprintf("failed to delete %s", path),
			Status5xx: "server error",
		},
	)
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}

// drain reads rest of body. Errors are ignored.
func drain(r io.Reader) {
	io.Copy(io.Discard, r)
}
