// Package tag implements the ANS-104 Avro tag codec: the {name, value}
// byte-pair list carried inside a signed data item.
//
// Learn more: https://github.com/ArweaveTeam/arweave-standards/blob/master/ans/ANS-104.md
package tag

import (
	"encoding/base64"
	"sync"

	avroschema "github.com/hamba/avro"
	"github.com/linkedin/goavro/v2"
)

const avroTagSchema = `
{
	"type": "array",
	"items": {
		"type": "record",
		"name": "Tag",
		"fields": [
			{ "name": "name", "type": "bytes" },
			{ "name": "value", "type": "bytes" }
		]
	}
}`

var (
	codecOnce sync.Once
	codec     *goavro.Codec
	codecErr  error
)

func init() {
	// Validate the schema constant independently of goavro, so a typo in
	// avroTagSchema fails at import time rather than on first use.
	if _, err := avroschema.Parse(avroTagSchema); err != nil {
		panic("tag: invalid avro schema constant: " + err.Error())
	}
}

func getCodec() (*goavro.Codec, error) {
	codecOnce.Do(func() {
		codec, codecErr = goavro.NewCodec(avroTagSchema)
	})
	return codec, codecErr
}

// Serialize converts readable Tag data into Avro-encoded byte data. An
// empty or nil list serializes to nil, matching the wire convention
// that a data item with no tags carries a zero-length tag-bytes region.
func Serialize(tags []Tag) ([]byte, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	c, err := getCodec()
	if err != nil {
		return nil, err
	}

	native := make([]any, 0, len(tags))
	for _, t := range tags {
		native = append(native, map[string]any{"name": []byte(t.Name), "value": []byte(t.Value)})
	}

	return c.BinaryFromNative(nil, native)
}

// Decode converts an Avro-encoded tag-bytes blob into readable Tag data.
// The caller is responsible for having already located the start and
// length of the blob: that bookkeeping depends on the bounds-checked
// tag-count/tag-bytes-length fields that precede it on the wire, which
// is the data item decoder's job, not this package's.
func Decode(data []byte) ([]Tag, error) {
	c, err := getCodec()
	if err != nil {
		return nil, err
	}

	native, _, err := c.NativeFromBinary(data)
	if err != nil {
		return nil, err
	}

	rows, ok := native.([]any)
	if !ok {
		return []Tag{}, nil
	}

	tags := make([]Tag, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].([]byte)
		value, _ := m["value"].([]byte)
		tags = append(tags, Tag{Name: string(name), Value: string(value)})
	}
	return tags, nil
}

// EncodeB64 returns tags with Name and Value replaced by their
// URL-safe, unpadded base64 encoding. A decoded data item carries its
// tags in this textual form, so downstream consumers can emit JSON
// without re-encoding; the Avro wire codec above works in raw bytes,
// so callers convert at the boundary.
func EncodeB64(tags []Tag) []Tag {
	out := make([]Tag, len(tags))
	for i, t := range tags {
		out[i] = Tag{
			Name:  base64.RawURLEncoding.EncodeToString([]byte(t.Name)),
			Value: base64.RawURLEncoding.EncodeToString([]byte(t.Value)),
		}
	}
	return out
}
