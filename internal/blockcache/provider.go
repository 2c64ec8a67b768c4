package blockcache

import (
	"context"
	"encoding/json"
)

// Provider fetches blocks from the remote source of truth.
type Provider interface {
	// FetchBlock performs exactly one request for block n, including full
	// transaction objects, and returns the verbatim response body.
	//
	// Failures are returned as *Error values classified with the kinds of
	// this package. Any other error is treated as unexpected.
	FetchBlock(ctx context.Context, n uint64) (json.RawMessage, error)
}
