// Package dataitem decodes a single ANS-104 signed data item from its
// raw bundle-entry bytes.
//
// Learn more: https://github.com/ArweaveTeam/arweave-standards/blob/master/ans/ANS-104.md
package dataitem

import "github.com/PatricioNapoli/axer/tag"

// DataItem is the decoded, readable form of one signed data item.
// Signature bytes are copied through, never cryptographically
// verified; only the id is checked against the enclosing bundle's
// directory.
type DataItem struct {
	ID            string    `json:"id"`
	SignatureType uint16    `json:"signature_type"`
	Signature     string    `json:"signature"`
	Owner         string    `json:"owner"`
	Target        string    `json:"target"`
	Anchor        string    `json:"anchor"`
	Tags          []tag.Tag `json:"tags"`
	Data          string    `json:"data"`
}
