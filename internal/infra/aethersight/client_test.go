package aethersight

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gabapcia/aethersight/internal/blockcache"
	transporthttp "github.com/gabapcia/aethersight/internal/pkg/transport/http"
	"github.com/gabapcia/aethersight/internal/txlinks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/", transporthttp.NewClient())
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_Block(t *testing.T) {
	t.Run("links as a JSON string", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/block/24041818", r.URL.Path)
			reply(w, http.StatusOK, `{"status":"success","links":"[{\"0xA\":\"0xB\"},{\"0xA\":\"0xC\"}]"}`)
		})

		list, err := c.Block(t.Context(), 24041818)
		require.NoError(t, err)

		assert.Equal(t, txlinks.ShapeLegacy, list.Shape)
		assert.Equal(t, []txlinks.Edge{{From: "0xA", To: "0xB"}, {From: "0xA", To: "0xC"}}, list.Edges)
	})

	t.Run("links as an array", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"status":"success","links":[{"from":"0xA","to":"0xB","hash":"0x1"}]}`)
		})

		list, err := c.Block(t.Context(), 1)
		require.NoError(t, err)

		assert.Equal(t, txlinks.ShapeStructured, list.Shape)
		assert.Equal(t, []txlinks.Edge{{From: "0xA", To: "0xB", Hash: "0x1"}}, list.Edges)
	})

	t.Run("error detail becomes the message", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusNotFound, `{"status":"error","detail":"Block 99 not found. Block may not exist yet or is invalid."}`)
		})

		_, err := c.Block(t.Context(), 99)
		require.ErrorIs(t, err, blockcache.ErrNotFound)
		assert.EqualError(t, err, "Block 99 not found. Block may not exist yet or is invalid.")
	})

	t.Run("server failure without a body", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.Block(t.Context(), 1)
		require.ErrorIs(t, err, blockcache.ErrUpstreamUnavailable)
		assert.EqualError(t, err, "502 Bad Gateway")
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := NewClient(srv.URL, transporthttp.NewClient()).Block(t.Context(), 1)
		require.ErrorIs(t, err, blockcache.ErrUpstreamUnavailable)
		assert.Contains(t, err.Error(), "Network error: ")
	})

	t.Run("missing links", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"status":"success"}`)
		})

		_, err := c.Block(t.Context(), 1)
		assert.ErrorIs(t, err, blockcache.ErrUnexpected)
	})
}

func TestClient_Range(t *testing.T) {
	t.Run("posts the range", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/blocks", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]uint64
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]uint64{"start_block": 100, "end_block": 102}, body)

			reply(w, http.StatusOK, `{"status":"success","links":[{"from":"0x1","to":"0x2","hash":"0xa"},{"from":"0x2","to":"0x3","hash":"0xb"}]}`)
		})

		list, err := c.Range(t.Context(), 100, 102)
		require.NoError(t, err)
		assert.Len(t, list.Edges, 2)
	})

	t.Run("validation failure", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusBadRequest, `{"status":"error","detail":"start_block must be less than or equal to end_block"}`)
		})

		_, err := c.Range(t.Context(), 5, 4)
		require.ErrorIs(t, err, blockcache.ErrMalformedInput)
		assert.EqualError(t, err, "start_block must be less than or equal to end_block")
	})
}

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, blockcache.ErrNotFound, kindForStatus(404))
	assert.Equal(t, blockcache.ErrMalformedInput, kindForStatus(400))
	assert.Equal(t, blockcache.ErrUpstreamUnavailable, kindForStatus(500))
	assert.Equal(t, blockcache.ErrUnexpected, kindForStatus(302))
}
