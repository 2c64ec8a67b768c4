package txlinks

import (
	"encoding/json"
	"testing"

	"github.com/gabapcia/aethersight/internal/blockcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(n uint64, body string) blockcache.Record {
	return blockcache.Record{Number: n, Raw: json.RawMessage(body)}
}

func TestExtract(t *testing.T) {
	block := record(24041818, `{"jsonrpc":"2.0","id":1,"result":{"transactions":[
		{"from":"0xA","to":"0xB","hash":"0x1111"},
		{"from":"0xC","to":null,"hash":"0x2222"},
		{"from":"","to":"0xD","hash":"0x3333"},
		{"from":"0xB","to":"0xa","hash":"0x4444"}
	]}}`)

	t.Run("skips transactions without both endpoints and keeps order", func(t *testing.T) {
		edges, err := Extract(block)
		require.NoError(t, err)

		assert.Equal(t, []Edge{
			{From: "0xA", To: "0xB"},
			{From: "0xB", To: "0xa"},
		}, edges)
	})

	t.Run("keeps hashes on request", func(t *testing.T) {
		edges, err := Extract(block, WithHashes())
		require.NoError(t, err)

		assert.Equal(t, []Edge{
			{From: "0xA", To: "0xB", Hash: "0x1111"},
			{From: "0xB", To: "0xa", Hash: "0x4444"},
		}, edges)
	})

	t.Run("block without transactions yields no edges", func(t *testing.T) {
		edges, err := Extract(record(1, `{"result":{"transactions":[]}}`))
		require.NoError(t, err)
		assert.NotNil(t, edges)
		assert.Empty(t, edges)

		edges, err = Extract(record(1, `{"result":{}}`))
		require.NoError(t, err)
		assert.Empty(t, edges)
	})

	t.Run("undecodable record", func(t *testing.T) {
		_, err := Extract(record(1, `nope`))
		assert.Error(t, err)
	})

	t.Run("scenario block 24041818", func(t *testing.T) {
		edges, err := Extract(record(24041818, `{"result":{"transactions":[{"from":"0xA","to":"0xB","hash":"0x1111"}]}}`), WithHashes())
		require.NoError(t, err)
		assert.Equal(t, []Edge{{From: "0xA", To: "0xB", Hash: "0x1111"}}, edges)
	})
}

func TestExtractRange(t *testing.T) {
	t.Run("concatenates in block order and tolerates empty blocks", func(t *testing.T) {
		records := []blockcache.Record{
			record(100, `{"result":{"transactions":[{"from":"0x1","to":"0x2","hash":"0xa"},{"from":"0x2","to":"0x3","hash":"0xb"}]}}`),
			record(101, `{"result":{"transactions":[]}}`),
			record(102, `{"result":{"transactions":[{"from":"0x3","to":"0x1","hash":"0xc"}]}}`),
		}

		edges, err := ExtractRange(records, WithHashes())
		require.NoError(t, err)

		assert.Equal(t, []Edge{
			{From: "0x1", To: "0x2", Hash: "0xa"},
			{From: "0x2", To: "0x3", Hash: "0xb"},
			{From: "0x3", To: "0x1", Hash: "0xc"},
		}, edges)
	})

	t.Run("no records", func(t *testing.T) {
		edges, err := ExtractRange(nil)
		require.NoError(t, err)
		assert.Empty(t, edges)
	})

	t.Run("stops at an undecodable record", func(t *testing.T) {
		_, err := ExtractRange([]blockcache.Record{record(1, `{"result":null}`), record(2, `[`)})
		assert.Error(t, err)
	})
}
