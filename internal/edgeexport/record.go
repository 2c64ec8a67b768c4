package edgeexport

import (
	"github.com/gabapcia/aethersight/internal/txlinks"
)

// Record is one exported transfer, tagged with the block range it was
// extracted from.
type Record struct {
	StartBlock uint64          `json:"start_block"`
	EndBlock   uint64          `json:"end_block"`
	From       txlinks.Address `json:"from"`
	To         txlinks.Address `json:"to"`
	Hash       txlinks.TxHash  `json:"hash,omitempty"`
}

func newRecords(start, end uint64, edges []txlinks.Edge) []Record {
	records := make([]Record, len(edges))
	for i, e := range edges {
		records[i] = Record{
			StartBlock: start,
			EndBlock:   end,
			From:       e.From,
			To:         e.To,
			Hash:       e.Hash,
		}
	}

	return records
}
