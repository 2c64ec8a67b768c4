package explorer

import (
	"strings"

	"github.com/gabapcia/aethersight/internal/txlinks"
)

// panelLimit caps each list of the side panel.
const panelLimit = 50

// PanelEntry is one transfer listed in the side panel. Short is what gets
// displayed; the full values are kept for linking out.
type PanelEntry struct {
	Counterparty txlinks.Address `json:"counterparty" yaml:"counterparty"`
	Hash         txlinks.TxHash  `json:"hash,omitempty" yaml:"hash,omitempty"`
	Short        string          `json:"short" yaml:"short"`
	Href         string          `json:"href" yaml:"href"`
}

// Panel describes the selected node: its outgoing and incoming transfers.
type Panel struct {
	Address  txlinks.Address `json:"address" yaml:"address"`
	Href     string          `json:"href" yaml:"href"`
	Outgoing []PanelEntry    `json:"outgoing" yaml:"outgoing"`
	Incoming []PanelEntry    `json:"incoming" yaml:"incoming"`
}

// Shorten returns the first 4 hex characters after the 0x prefix. Values
// too short to shorten are returned unchanged.
func Shorten(value string) string {
	digits, ok := strings.CutPrefix(value, "0x")
	if !ok {
		digits, _ = strings.CutPrefix(value, "0X")
	}

	if len(digits) < 4 {
		return value
	}

	return digits[:4]
}

// BuildPanel filters edges into the transfers sent (From == id) and received
// (To == id) by id, each capped at 50 entries and kept in edge order. Entries
// show the transaction hash when known, the counterparty address otherwise.
func BuildPanel(edges []txlinks.Edge, id txlinks.Address, explorerURL string) Panel {
	links := linker{base: strings.TrimRight(explorerURL, "/")}

	panel := Panel{
		Address:  id,
		Href:     links.address(id),
		Outgoing: make([]PanelEntry, 0),
		Incoming: make([]PanelEntry, 0),
	}

	for _, edge := range edges {
		if edge.From == id && len(panel.Outgoing) < panelLimit {
			panel.Outgoing = append(panel.Outgoing, links.entry(edge.To, edge.Hash))
		}

		if edge.To == id && len(panel.Incoming) < panelLimit {
			panel.Incoming = append(panel.Incoming, links.entry(edge.From, edge.Hash))
		}
	}

	return panel
}

// linker builds block explorer URLs.
type linker struct {
	base string
}

func (l linker) address(a txlinks.Address) string {
	return l.base + "/address/" + string(a)
}

func (l linker) tx(h txlinks.TxHash) string {
	return l.base + "/tx/" + string(h)
}

func (l linker) entry(counterparty txlinks.Address, hash txlinks.TxHash) PanelEntry {
	if hash != "" {
		return PanelEntry{
			Counterparty: counterparty,
			Hash:         hash,
			Short:        Shorten(string(hash)),
			Href:         l.tx(hash),
		}
	}

	return PanelEntry{
		Counterparty: counterparty,
		Short:        Shorten(string(counterparty)),
		Href:         l.address(counterparty),
	}
}
