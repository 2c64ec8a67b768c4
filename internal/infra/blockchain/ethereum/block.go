package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/pkg/types"
)

const getBlockByNumberMethod = "eth_getBlockByNumber"

// FetchBlock retrieves block n with full transaction objects and classifies
// the outcome:
//
//   - missing API key        -> ErrConfigurationMissing (no request is made)
//   - no usable reply        -> ErrUpstreamUnavailable (also non-JSON 2xx bodies)
//   - JSON-RPC error object  -> ErrUpstreamRejected
//   - null or absent result  -> ErrNotFound
//
// On success the verbatim response body is returned.
func (c *client) FetchBlock(ctx context.Context, n uint64) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, blockcache.NewError(
			blockcache.ErrConfigurationMissing,
			"ALCHEMY_API_KEY environment variable is required",
			nil,
		)
	}

	res, err := c.conn.Call(ctx, getBlockByNumberMethod, types.HexFromUint64(n), true)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if res.Error != nil {
		message := res.Error.Message
		if message == "" {
			message = "Unknown error"
		}

		return nil, blockcache.NewError(
			blockcache.ErrUpstreamRejected,
			fmt.Sprintf("Ethereum API error: %s", message),
			res.Err(),
		)
	}

	if !res.HasResult() {
		return nil, blockcache.NewError(
			blockcache.ErrNotFound,
			fmt.Sprintf("Block %d not found. Block may not exist yet or is invalid.", n),
			nil,
		)
	}

	return res.Body, nil
}

// classifyTransportError reports any failure to obtain a JSON-RPC reply as an
// unavailable upstream.
func classifyTransportError(err error) error {
	return blockcache.NewError(
		blockcache.ErrUpstreamUnavailable,
		fmt.Sprintf("Network error: %s", err.Error()),
		err,
	)
}
