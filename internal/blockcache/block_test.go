package blockcache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Transactions(t *testing.T) {
	t.Run("decodes transactions in provider order", func(t *testing.T) {
		record := Record{
			Number: 24041818,
			Raw: json.RawMessage(`{"jsonrpc":"2.0","id":1,"result":{"number":"0x16ed95a","transactions":[
				{"from":"0xA","to":"0xB","hash":"0x1111","value":"0x0"},
				{"from":"0xC","to":null,"hash":"0x2222"},
				{"from":"0xB","to":"0xA","hash":"0x3333"}
			]}}`),
		}

		txs, err := record.Transactions()
		require.NoError(t, err)
		assert.Equal(t, []Transaction{
			{From: "0xA", To: "0xB", Hash: "0x1111"},
			{From: "0xC", To: "", Hash: "0x2222"},
			{From: "0xB", To: "0xA", Hash: "0x3333"},
		}, txs)
	})

	t.Run("missing result yields no transactions", func(t *testing.T) {
		txs, err := Record{Raw: json.RawMessage(`{"jsonrpc":"2.0","id":1,"result":null}`)}.Transactions()
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("missing transactions yields no transactions", func(t *testing.T) {
		txs, err := Record{Raw: json.RawMessage(`{"result":{"number":"0x1"}}`)}.Transactions()
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("hash-only entries are skipped", func(t *testing.T) {
		txs, err := Record{Raw: json.RawMessage(`{"result":{"transactions":["0xdead",{"from":"0xA","to":"0xB"}]}}`)}.Transactions()
		require.NoError(t, err)
		assert.Equal(t, []Transaction{{From: "0xA", To: "0xB"}}, txs)
	})

	t.Run("invalid body", func(t *testing.T) {
		_, err := Record{Raw: json.RawMessage(`not json`)}.Transactions()
		assert.Error(t, err)
	})
}
