package blockcache

import (
	"bytes"
	"encoding/json"
)

// Record is a block as returned by the provider. Raw is the verbatim
// JSON-RPC response body (the `{"jsonrpc", "id", "result"}` envelope) and is
// what gets persisted. A record for a given number never changes once stored.
type Record struct {
	Number uint64
	Raw    json.RawMessage
}

// Transaction is the subset of a block transaction the rest of the pipeline
// reads. Every other field stays in Record.Raw untouched.
type Transaction struct {
	From string `json:"from"`
	To   string `json:"to"`
	Hash string `json:"hash"`
}

// envelope mirrors the part of the response body that holds the transactions.
type envelope struct {
	Result *struct {
		Transactions []json.RawMessage `json:"transactions"`
	} `json:"result"`
}

// readable reports whether raw is a JSON object that decodes as a block
// envelope.
func readable(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return false
	}

	var env envelope
	return json.Unmarshal(raw, &env) == nil
}

// Transactions decodes the ordered transaction list of the record.
//
// A record without a result or without transactions yields an empty list.
// Entries that are not transaction objects (for instance bare hashes) are
// skipped. An error is returned only when Raw is not a JSON object.
func (r Record) Transactions() ([]Transaction, error) {
	var env envelope
	if err := json.Unmarshal(r.Raw, &env); err != nil {
		return nil, err
	}

	if env.Result == nil {
		return nil, nil
	}

	txs := make([]Transaction, 0, len(env.Result.Transactions))
	for _, raw := range env.Result.Transactions {
		var tx Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}
