package arweave

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PatricioNapoli/axer/bundle"
	"github.com/tidwall/gjson"
	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/timeout"
)

// Client is a typed GET client for a single Arweave gateway, built on
// gentleman's request-builder pipeline so the per-request deadline
// lives in a plugin instead of being re-derived on every call.
type Client struct {
	gateway string
	http    *gentleman.Client
}

// NewClient builds a Client bound to gateway (e.g. "https://arweave.net")
// with the given per-request timeout.
func NewClient(gateway string, requestTimeout time.Duration) *Client {
	cli := gentleman.New()
	cli.URL(gateway)
	cli.Use(timeout.Request(requestTimeout))

	return &Client{gateway: gateway, http: cli}
}

// Clone returns a handle sharing the underlying gentleman.Client.
// Safe to hand one per concurrent fetch task: gentleman builds an
// independent request per call and the Client holds no other mutable
// state.
func (c *Client) Clone() *Client {
	return &Client{gateway: c.gateway, http: c.http}
}

// GetNetworkInfo fetches GET /info.
func (c *Client) GetNetworkInfo(ctx context.Context) (*NetworkInfo, error) {
	body, err := c.get(ctx, "info")
	if err != nil {
		return nil, err
	}
	info := &NetworkInfo{}
	if err := json.Unmarshal(body, info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetBundle fetches a parent tx by id, validates it, then fetches and
// decodes its bundle bytes.
func (c *Client) GetBundle(ctx context.Context, id string) (*ParentTx, *bundle.Bundle, error) {
	tx, err := c.getParentTx(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if err := Validate(tx); err != nil {
		return nil, nil, err
	}
	b, err := c.GetBundleData(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	return tx, b, nil
}

// GetBundleData fetches GET /{tx.id}, the raw bundle bytes, and
// decodes them via the bundle package.
func (c *Client) GetBundleData(ctx context.Context, tx *ParentTx) (*bundle.Bundle, error) {
	raw, err := c.get(ctx, tx.ID)
	if err != nil {
		return nil, err
	}
	return bundle.Decode(raw)
}

func (c *Client) getParentTx(ctx context.Context, id string) (*ParentTx, error) {
	body, err := c.get(ctx, fmt.Sprintf("tx/%s", id))
	if err != nil {
		return nil, err
	}
	tx := &ParentTx{}
	if err := json.Unmarshal(body, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := c.http.Request().Method("GET").Path("/" + path)
	// Bind ctx to the outgoing http.Request so cancelling it aborts an
	// in-flight call instead of only gating the next one; the timeout
	// plugin alone would let a cancelled request run out its deadline.
	req.Context.SetCancelContext(ctx)

	res, err := req.Send()
	if err != nil {
		return nil, err
	}

	body := res.Bytes()
	if !res.Ok {
		return nil, &StatusError{Status: res.StatusCode, Body: errorBody(body)}
	}
	return body, nil
}

// errorBody pulls an "error" field out of a JSON error body via gjson,
// falling back to the raw body when the response isn't a JSON object
// (gateways sometimes return a plain-text 502/504 page).
func errorBody(body []byte) string {
	if field := gjson.GetBytes(body, "error"); field.Exists() {
		return field.String()
	}
	return string(body)
}
