// Package bundle decodes an ANS-104 "binary" bundle: a flat item-count
// header and directory followed by the concatenated bytes of every
// signed data item it carries.
//
// Learn more: https://github.com/ArweaveTeam/arweave-standards/blob/master/ans/ANS-104.md
package bundle

import "github.com/PatricioNapoli/axer/dataitem"

// bundleHeader is one entry of the item directory: the declared byte
// length of an item and the id its signature must hash to. Length
// stays uint64 until it has been checked against the bytes actually
// present; converting first would let a value past 2^63 wrap negative.
type bundleHeader struct {
	Length uint64
	ID     string
}

// Bundle is the decoded form of a bundle transaction's binary payload.
type Bundle struct {
	Items []dataitem.DataItem `json:"items"`
}
