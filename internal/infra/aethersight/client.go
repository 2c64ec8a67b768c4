// Package aethersight is a client for the aethersight HTTP API. It lets an
// explorer session run against a remote server instead of an in-process
// block cache.
package aethersight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/txlinks"

	"github.com/hashicorp/go-retryablehttp"
)

// envelope is the body of every API reply.
type envelope struct {
	Status string          `json:"status"`
	Links  json.RawMessage `json:"links"`
	Detail string          `json:"detail"`
}

type rangeRequest struct {
	StartBlock uint64 `json:"start_block"`
	EndBlock   uint64 `json:"end_block"`
}

type client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

var _ txlinks.Service = (*client)(nil)

// Block fetches the edge list of block n.
func (c *client) Block(ctx context.Context, n uint64) (txlinks.EdgeList, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/block/"+strconv.FormatUint(n, 10), nil)
	if err != nil {
		return txlinks.EdgeList{}, blockcache.Unexpected(err)
	}

	return c.do(req)
}

// Range fetches the edge list of blocks [start, end].
func (c *client) Range(ctx context.Context, start, end uint64) (txlinks.EdgeList, error) {
	payload, err := json.Marshal(rangeRequest{StartBlock: start, EndBlock: end})
	if err != nil {
		return txlinks.EdgeList{}, blockcache.Unexpected(err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/blocks", bytes.NewReader(payload))
	if err != nil {
		return txlinks.EdgeList{}, blockcache.Unexpected(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *client) do(req *retryablehttp.Request) (txlinks.EdgeList, error) {
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return txlinks.EdgeList{}, blockcache.NewError(blockcache.ErrUpstreamUnavailable, fmt.Sprintf("Network error: %s", err.Error()), err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return txlinks.EdgeList{}, blockcache.NewError(blockcache.ErrUpstreamUnavailable, fmt.Sprintf("Network error: %s", err.Error()), err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if res.StatusCode >= 200 && res.StatusCode <= 299 {
			return txlinks.EdgeList{}, blockcache.Unexpected(err)
		}
		env.Detail = res.Status
	}

	if res.StatusCode < 200 || res.StatusCode > 299 || env.Status == "error" {
		detail := env.Detail
		if detail == "" {
			detail = res.Status
		}
		return txlinks.EdgeList{}, blockcache.NewError(kindForStatus(res.StatusCode), detail, nil)
	}

	list, err := txlinks.Decode(env.Links)
	if err != nil {
		return txlinks.EdgeList{}, blockcache.Unexpected(err)
	}

	return list, nil
}

// kindForStatus maps an API status back to the failure kind that produced
// it. Server-side failures all read as an unavailable upstream.
func kindForStatus(code int) error {
	switch {
	case code == http.StatusNotFound:
		return blockcache.ErrNotFound
	case code >= 400 && code <= 499:
		return blockcache.ErrMalformedInput
	case code >= 500:
		return blockcache.ErrUpstreamUnavailable
	default:
		return blockcache.ErrUnexpected
	}
}

// NewClient returns an API client for the server at baseURL that sends its
// requests through httpClient (see the transport/http package).
func NewClient(baseURL string, httpClient *retryablehttp.Client) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}
