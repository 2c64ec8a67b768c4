// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP that keeps the
// verbatim response body alongside the decoded envelope, so callers can both
// classify a reply and persist it untouched.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrInvalidResponse indicates a 2xx reply whose body is not a JSON-RPC envelope.
	ErrInvalidResponse = errors.New("invalid json-rpc response")
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int    // numeric HTTP status
	Status     string // status line, e.g. "503 Service Unavailable"
}

func (e *StatusError) Error() string {
	return e.Status
}

// ResponseError is the JSON-RPC error object.
type ResponseError struct {
	Code    int    `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
	Message string `json:"message"` // Human-readable error message
}

// Response is a decoded JSON-RPC 2.0 reply.
type Response struct {
	Body   json.RawMessage `json:"-"`      // Verbatim response body
	Error  *ResponseError  `json:"error"`  // Error object, nil when absent or null
	Result json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// HasResult reports whether the reply carries a non-null result.
func (r Response) HasResult() bool {
	return len(r.Result) > 0 && !bytes.Equal(bytes.TrimSpace(r.Result), []byte("null"))
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r Response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Call sends a JSON-RPC request with the given method name and parameters.
	//
	// A JSON-RPC error object is not a Go error: it is reported in
	// Response.Error so the caller can classify it. Errors are returned for
	// transport failures, non-2xx statuses (*StatusError) and bodies that
	// are not JSON (ErrInvalidResponse).
	Call(ctx context.Context, method string, params ...any) (Response, error)
}

// client is a reusable JSON-RPC client over HTTP.
type client struct {
	providerEndpoint string                // The URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Call implements Client. The `id` field in the request is a UUID string.
func (c *client) Call(ctx context.Context, method string, params ...any) (Response, error) {
	payload, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return Response{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(payload))
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Response{Body: body}, &StatusError{StatusCode: res.StatusCode, Status: res.Status}
	}

	var data Response
	if err := json.Unmarshal(body, &data); err != nil {
		return Response{Body: body}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	data.Body = body

	return data, nil
}

// NewClient creates a JSON-RPC client for providerEndpoint that sends its
// requests through httpClient (see the transport/http package).
func NewClient(providerEndpoint string, httpClient *retryablehttp.Client) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
