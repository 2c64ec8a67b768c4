package jsonrpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	transporthttp "github.com/gabapcia/aethersight/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := Response{}

		assert.NoError(t, resp.Err(), "Err() should return nil when Error field is nil")
	})

	t.Run("returns formatted error when Error field is present", func(t *testing.T) {
		resp := Response{
			Error: &ResponseError{Code: -32601, Message: "method not found"},
		}

		err := resp.Err()

		assert.ErrorIs(t, err, ErrProviderReturnedError, "Err() should wrap ErrProviderReturnedError")
		assert.Contains(t, err.Error(), "[-32601]", "error message should include code")
		assert.Contains(t, err.Error(), "method not found", "error message should include message")
	})
}

func TestResponse_HasResult(t *testing.T) {
	assert.False(t, Response{}.HasResult())
	assert.False(t, Response{Result: json.RawMessage("null")}.HasResult())
	assert.True(t, Response{Result: json.RawMessage(`{"number":"0x1"}`)}.HasResult())
}

func TestClient_Call(t *testing.T) {
	t.Run("sends a json-rpc 2.0 request and keeps the verbatim body", func(t *testing.T) {
		var received map[string]any
		body := `{"jsonrpc":"2.0","id":"1","result":{"number":"0x10","transactions":[]}}`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Write([]byte(body))
		}))
		defer server.Close()

		c := NewClient(server.URL, transporthttp.NewClient())

		res, err := c.Call(t.Context(), "eth_getBlockByNumber", "0x10", true)
		require.NoError(t, err)

		assert.JSONEq(t, body, string(res.Body))
		assert.Equal(t, []byte(body), []byte(res.Body), "body must not be re-encoded")
		assert.True(t, res.HasResult())
		assert.Nil(t, res.Error)

		assert.Equal(t, "2.0", received["jsonrpc"])
		assert.Equal(t, "eth_getBlockByNumber", received["method"])
		assert.Equal(t, []any{"0x10", true}, received["params"])
		assert.NotEmpty(t, received["id"])
	})

	t.Run("json-rpc error object is reported on the response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error": map[string]any{
					"code":    -32000,
					"message": "block not found",
				},
				"id": "1",
			})
		}))
		defer server.Close()

		c := NewClient(server.URL, transporthttp.NewClient())

		res, err := c.Call(t.Context(), "eth_getBlockByNumber")
		require.NoError(t, err)
		require.NotNil(t, res.Error)
		assert.Equal(t, "block not found", res.Error.Message)
		assert.ErrorIs(t, res.Err(), ErrProviderReturnedError)
	})

	t.Run("null result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":null}`))
		}))
		defer server.Close()

		res, err := NewClient(server.URL, transporthttp.NewClient()).Call(t.Context(), "eth_getBlockByNumber")
		require.NoError(t, err)
		assert.False(t, res.HasResult())
	})

	t.Run("non-2xx status returns a StatusError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, transporthttp.NewClient()).Call(t.Context(), "eth_getBlockByNumber")

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
		assert.Equal(t, "429 Too Many Requests", statusErr.Error())
	})

	t.Run("malformed JSON response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer server.Close()

		res, err := NewClient(server.URL, transporthttp.NewClient()).Call(t.Context(), "bad_json")
		assert.ErrorIs(t, err, ErrInvalidResponse)
		assert.Contains(t, err.Error(), "invalid character")
		assert.Equal(t, "this is not json", string(res.Body))
	})

	t.Run("network error when server is down", func(t *testing.T) {
		server := httptest.NewServer(nil)
		server.Close()

		c := NewClient(server.URL, transporthttp.NewClient(transporthttp.WithTimeout(time.Second)))

		res, err := c.Call(t.Context(), "network_failure")
		assert.Error(t, err)
		assert.Nil(t, res.Body)

		var statusErr *StatusError
		assert.NotErrorAs(t, err, &statusErr)
		assert.NotErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestNewClient(t *testing.T) {
	httpClient := transporthttp.NewClient()
	c := NewClient("http://localhost:8545", httpClient)

	assert.Equal(t, "http://localhost:8545", c.providerEndpoint)
	assert.Same(t, httpClient, c.httpClient)
}
