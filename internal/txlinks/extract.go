package txlinks

import (
	"github.com/gabapcia/aethersight/internal/blockcache"
)

// config holds extraction settings.
type config struct {
	withHashes bool
}

// Option configures extraction.
type Option func(*config)

// WithHashes keeps the transaction hash on every edge. Without it, Hash is
// left empty.
func WithHashes() Option {
	return func(c *config) {
		c.withHashes = true
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Extract returns the edges of a single block in provider order.
// Transactions without a sender or a recipient (contract creations, for
// instance) are skipped. A block without transactions yields no edges.
func Extract(record blockcache.Record, opts ...Option) ([]Edge, error) {
	return extract(nil, record, newConfig(opts))
}

// ExtractRange concatenates the edges of records, which are expected in
// ascending block order.
func ExtractRange(records []blockcache.Record, opts ...Option) ([]Edge, error) {
	cfg := newConfig(opts)

	edges := make([]Edge, 0)
	for _, record := range records {
		var err error
		if edges, err = extract(edges, record, cfg); err != nil {
			return nil, err
		}
	}

	return edges, nil
}

func extract(dst []Edge, record blockcache.Record, cfg config) ([]Edge, error) {
	txs, err := record.Transactions()
	if err != nil {
		return nil, err
	}

	if dst == nil {
		dst = make([]Edge, 0, len(txs))
	}

	for _, tx := range txs {
		if tx.From == "" || tx.To == "" {
			continue
		}

		edge := Edge{
			From: Address(tx.From),
			To:   Address(tx.To),
		}
		if cfg.withHashes {
			edge.Hash = TxHash(tx.Hash)
		}

		dst = append(dst, edge)
	}

	return dst, nil
}
