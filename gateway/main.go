package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samsonr/cli/constants"
	"github.com/samsonr/cli/entity"
	"github.com/samsonr/cli/errors"
	"github.com/samsonr/cli/lib/logging"
	"golang.org/x/net/http/httpguts"
)

const requestTimeout = 30 * time.Second

// Envelope is a success body with a required top level key.
type Envelope interface {
	Validate() error
}

// Gateway talks to the Samson HTTP API. It holds no state besides the
// underlying client's connection pool.
type Gateway struct {
	host       string
	token      string
	userAgent  string
	httpClient *http.Client
}

type Option func(*Gateway)

func WithHost(host string) Option {
	return func(g *Gateway) {
		if host != "" {
			g.host = host
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

func WithUserAgent(userAgent string) Option {
	return func(g *Gateway) {
		g.userAgent = userAgent
	}
}

func New(token string, opts ...Option) (*Gateway, error) {
	if token == "" {
		return nil, &errors.ClientBuildError{Reason: "token is empty"}
	}
	if !httpguts.ValidHeaderFieldValue(bearer(token)) {
		return nil, &errors.ClientBuildError{Reason: "token contains characters not allowed in an HTTP header"}
	}

	g := &Gateway{
		host:      constants.DefaultHost,
		token:     token,
		userAgent: constants.UserAgent(),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
	for _, opt := range opts {
		opt(g)
	}

	if !httpguts.ValidHeaderFieldValue(g.userAgent) {
		return nil, &errors.ClientBuildError{Reason: fmt.Sprintf("invalid user agent %q", g.userAgent)}
	}
	if g.httpClient == nil {
		return nil, &errors.ClientBuildError{Reason: "no HTTP client"}
	}
	u, err := url.Parse(g.host)
	if err != nil {
		return nil, &errors.ClientBuildError{Reason: fmt.Sprintf("invalid host %q", g.host), Err: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &errors.ClientBuildError{Reason: fmt.Sprintf("host %q must be an absolute http(s) URL", g.host)}
	}
	g.host = strings.TrimRight(g.host, "/")

	return g, nil
}

func (g *Gateway) Host() string {
	return g.host
}

func bearer(token string) string {
	return fmt.Sprintf("Bearer %s", token)
}

type Request struct {
	method string
	path   string
	body   interface{}
	header http.Header
}

func (g *Gateway) authorize(header http.Header) {
	header.Set("Authorization", bearer(g.token))
	header.Set("User-Agent", g.userAgent)
}

// NewRequest builds an authorized request for path, relative to the host.
func (g *Gateway) NewRequest(method string, path string, body interface{}) *Request {
	req := &Request{
		method: method,
		path:   path,
		body:   body,
		header: http.Header{},
	}
	g.authorize(req.header)
	return req
}

// Run performs exactly one HTTP exchange and decodes the answer into resp.
func (g *Gateway) Run(ctx context.Context, r *Request, resp Envelope) error {
	logger := logging.FromContext(ctx)

	var requestBody io.Reader
	if r.body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(r.body); err != nil {
			return errors.Wrap(err, "encode body")
		}
		requestBody = &buf
	}

	endpoint := g.host + r.path
	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, requestBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	req.Header = r.header.Clone()
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("sending request", "method", r.method, "url", endpoint)
	res, err := g.httpClient.Do(req)
	if err != nil {
		return &errors.TransportError{Method: r.method, URL: endpoint, Err: err}
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return &errors.TransportError{Method: r.method, URL: endpoint, Err: err}
	}
	logger.Debug("received response", "status", res.StatusCode, "bytes", buf.Len())

	err = decodeResponse(res.StatusCode, buf.Bytes(), resp)
	var rejection *errors.RemoteRejection
	if errors.As(err, &rejection) {
		logger.Info("request rejected", "url", endpoint, "status", rejection.Status, "error", rejection.Message)
	}
	return err
}

func decodeResponse(status int, body []byte, resp Envelope) error {
	switch status {
	case http.StatusOK, http.StatusCreated:
		if err := json.Unmarshal(body, resp); err != nil {
			return &errors.ResponseFormatError{StatusCode: status, Body: body, Err: err}
		}
		if err := resp.Validate(); err != nil {
			return &errors.ResponseFormatError{StatusCode: status, Body: body, Err: err}
		}
		return nil
	}

	var remote entity.ErrorResponse
	if err := json.Unmarshal(body, &remote); err != nil {
		return &errors.ResponseFormatError{StatusCode: status, Body: body, Err: err}
	}
	if err := remote.Validate(); err != nil {
		return &errors.ResponseFormatError{StatusCode: status, Body: body, Err: err}
	}

	code := status
	if remote.Status != nil {
		code = *remote.Status
	}
	return &errors.RemoteRejection{Status: code, Message: *remote.Error}
}
