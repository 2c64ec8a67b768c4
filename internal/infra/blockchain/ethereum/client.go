// Package ethereum implements blockcache.Provider for Ethereum JSON-RPC
// providers such as Alchemy.
package ethereum

import (
	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/pkg/transport/jsonrpc"
)

// client fetches blocks from an Ethereum node through a JSON-RPC connection.
type client struct {
	conn   jsonrpc.Client // Underlying JSON-RPC client used to interact with the Ethereum node
	apiKey string         // Provider credential, part of conn's endpoint
}

// Ensure client implements the blockcache.Provider interface at compile time.
var _ blockcache.Provider = (*client)(nil)

// NewClient creates a new Ethereum provider over conn. apiKey is the
// credential embedded in conn's endpoint; when it is empty every fetch fails
// with blockcache.ErrConfigurationMissing without touching the network.
func NewClient(conn jsonrpc.Client, apiKey string) *client {
	return &client{
		conn:   conn,
		apiKey: apiKey,
	}
}
