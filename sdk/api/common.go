package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
)

// TokenGetter supplies the bearer token that is attached to outbound requests.
// An empty token means the request is sent unauthenticated. The session
// package's TokenStore satisfies this interface.
type TokenGetter interface {
	Get() (string, error)
}

// StaticToken is a TokenGetter that always returns the same token. Useful for
// tests and for callers that manage credentials themselves.
type StaticToken string

// Get implements TokenGetter.
func (s StaticToken) Get() (string, error) {
	return string(s), nil
}

// ClientOptions represents optional client configuration.
type ClientOptions struct {
	// AllowInsecure, if true, disables TLS certificate verification.
	AllowInsecure bool
	// OnUnauthorized, if non-nil, is invoked whenever ANY request receives a
	// 401 response, regardless of which operation issued the call. This is the
	// global forced-logout side channel: wiring it to Session.ForceLogout puts
	// a single authority in charge of tearing the session down.
	OnUnauthorized func()
}

// OutboundRequest models all the aspects of a single outbound API call in a
// succinct fashion.
type OutboundRequest struct {
	// Method specifies the HTTP method to be used.
	Method string
	// Path specifies a path (relative to the root of the API) to be used.
	Path string
	// QueryParams optionally specifies any URL query parameters to be used.
	QueryParams map[string]string
	// Headers optionally specifies any miscellaneous HTTP headers to be used.
	Headers map[string]string
	// ReqBodyObj optionally provides an object that can be marshaled to create
	// the body of the HTTP request.
	ReqBodyObj interface{}
	// SuccessCode specifies what HTTP response code should indicate a
	// successful API call. Defaults to 200.
	SuccessCode int
	// RespObj optionally provides an object into which the HTTP response body
	// can be unmarshaled.
	RespObj interface{}
}

// BaseClient provides "API machinery" used by all the specialized API
// clients: attaching the bearer token, encoding request bodies, interpreting
// response codes, decoding response bodies, and reporting 401s to the global
// forced-logout hook.
type BaseClient struct {
	APIAddress     string
	Tokens         TokenGetter
	HTTPClient     *http.Client
	OnUnauthorized func()
}

// NewBaseClient returns client machinery configured per the given options.
func NewBaseClient(
	apiAddress string,
	tokens TokenGetter,
	opts *ClientOptions,
) *BaseClient {
	if opts == nil {
		opts = &ClientOptions{}
	}
	return &BaseClient{
		APIAddress: apiAddress,
		Tokens:     tokens,
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: opts.AllowInsecure, // nolint: gosec
				},
			},
		},
		OnUnauthorized: opts.OnUnauthorized,
	}
}

// ExecuteRequest prepares and executes an HTTP request based on the provided
// OutboundRequest, interprets the HTTP response code, and decodes the response
// body into the request's RespObj (if any).
func (b *BaseClient) ExecuteRequest(
	ctx context.Context,
	req OutboundRequest,
) error {
	resp, err := b.SubmitRequest(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if req.RespObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, req.RespObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

// SubmitRequest prepares and executes an HTTP request based on the provided
// OutboundRequest and returns the raw HTTP response. This is a lower-level
// function than ExecuteRequest(), suitable for cases where specialized
// response handling is required.
func (b *BaseClient) SubmitRequest(
	ctx context.Context,
	req OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if req.ReqBodyObj != nil {
		switch rb := req.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(req.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	r, err := http.NewRequestWithContext(
		ctx,
		req.Method,
		fmt.Sprintf("%s/%s", b.APIAddress, req.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			req.Method,
			req.Path,
		)
	}
	if len(req.QueryParams) > 0 {
		q := r.URL.Query()
		for k, v := range req.QueryParams {
			q.Set(k, v)
		}
		r.URL.RawQuery = q.Encode()
	}
	if reqBodyReader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	// The token is read from the store on EVERY request so that logins and
	// logouts that happened after this client was constructed are always
	// reflected. A request without a token simply goes out unauthenticated.
	if b.Tokens != nil {
		if token, err := b.Tokens.Get(); err == nil && token != "" {
			r.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
	}
	for k, v := range req.Headers {
		r.Header.Add(k, v)
	}

	resp, err := b.HTTPClient.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}

	successCode := req.SuccessCode
	if successCode == 0 {
		successCode = http.StatusOK
	}
	if resp.StatusCode != successCode {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusUnauthorized &&
			b.OnUnauthorized != nil {
			b.OnUnauthorized()
		}
		return nil, b.apiErrorFromResponse(resp)
	}
	return resp, nil
}

// apiErrorEnvelope captures the shapes of error bodies the API is known to
// produce. The most common is {"error": "..."}; validation failures may also
// carry {"message": "...", "errors": [...]}.
type apiErrorEnvelope struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (b *BaseClient) apiErrorFromResponse(resp *http.Response) error {
	envelope := apiErrorEnvelope{}
	if bodyBytes, err := ioutil.ReadAll(resp.Body); err == nil {
		// A body that doesn't parse is treated the same as no body at all.
		json.Unmarshal(bodyBytes, &envelope) // nolint: errcheck
	}
	reason := envelope.Error
	if reason == "" {
		reason = envelope.Message
	}
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ErrBadRequest{Reason: reason, Details: envelope.Errors}
	case http.StatusUnauthorized:
		return &ErrAuthentication{Reason: reason}
	case http.StatusForbidden:
		return &ErrAuthorization{}
	case http.StatusNotFound:
		return &ErrNotFound{Reason: reason}
	case http.StatusConflict:
		return &ErrConflict{Reason: reason}
	case http.StatusInternalServerError:
		return &ErrInternalServer{}
	default:
		return errors.Errorf(
			"received %d from API server",
			resp.StatusCode,
		)
	}
}
