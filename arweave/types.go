// Package arweave talks to an Arweave gateway over HTTP: fetching
// network info, a parent transaction's JSON envelope, and the raw
// bundle bytes it carries, and validating that the envelope actually
// describes an ANS-104 binary bundle.
package arweave

import (
	"github.com/PatricioNapoli/axer/tag"
	"github.com/shopspring/decimal"
)

// ParentTx is the typed view of the outer Arweave transaction JSON
// that wraps a bundle's binary payload, matching the node's /tx/{id}
// response schema.
type ParentTx struct {
	Format    int             `json:"format"`
	ID        string          `json:"id"`
	LastTx    string          `json:"last_tx"`
	Owner     string          `json:"owner"`
	Target    string          `json:"target"`
	Quantity  string          `json:"quantity"`
	Data      string          `json:"data"`
	DataRoot  string          `json:"data_root"`
	DataSize  decimal.Decimal `json:"data_size"`
	Reward    decimal.Decimal `json:"reward"`
	Signature string          `json:"signature"`
	Tags      []tag.Tag       `json:"tags"`
}

// NetworkInfo mirrors the Arweave node `/info` response. The tool only
// ever reads Height and Network from it, but the full shape is kept so
// a caller printing the startup banner sees the same fields the node
// API actually returns.
type NetworkInfo struct {
	Network          string `json:"network"`
	Version          int64  `json:"version"`
	Release          int64  `json:"release"`
	Height           int64  `json:"height"`
	Current          string `json:"current"`
	Blocks           int64  `json:"blocks"`
	Peers            int64  `json:"peers"`
	QueueLength      int64  `json:"queue_length"`
	NodeStateLatency int64  `json:"node_state_latency"`
}
