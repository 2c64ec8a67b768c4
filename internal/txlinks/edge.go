// Package txlinks turns raw blocks into ordered transfer edges and encodes
// edge lists in the two wire shapes consumers understand.
package txlinks

// Address is an account address. It is compared byte for byte; no case
// folding or checksum normalisation is applied.
type Address string

// TxHash is a transaction hash.
type TxHash string

// Edge is a single transfer from one address to another. Both endpoints are
// always non-empty.
type Edge struct {
	From Address `json:"from"`
	To   Address `json:"to"`
	Hash TxHash  `json:"hash,omitempty"`
}
