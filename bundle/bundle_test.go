package bundle

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/PatricioNapoli/axer/tag"
	"github.com/PatricioNapoli/axer/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedBytes(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// buildRawItem assembles one ed25519-signed item's raw bytes, mirroring
// dataitem_test.go's buildItem helper.
func buildRawItem(t *testing.T, sig, owner []byte, tags []tag.Tag, data []byte) []byte {
	t.Helper()
	raw := make([]byte, 0)
	raw = binary.LittleEndian.AppendUint16(raw, wire.SigEd25519)
	raw = append(raw, sig...)
	raw = append(raw, owner...)
	raw = append(raw, 0) // no target
	raw = append(raw, 0) // no anchor

	rawTags, err := tag.Serialize(tags)
	require.NoError(t, err)

	count := make([]byte, 8)
	binary.LittleEndian.PutUint64(count, uint64(len(tags)))
	raw = append(raw, count...)
	if len(tags) > 0 {
		length := make([]byte, 8)
		binary.LittleEndian.PutUint64(length, uint64(len(rawTags)))
		raw = append(raw, length...)
		raw = append(raw, rawTags...)
	}
	raw = append(raw, data...)
	return raw
}

func buildBundle(t *testing.T, items [][]byte, ids [][]byte) []byte {
	t.Helper()
	n := len(items)

	header := make([]byte, 32)
	binary.LittleEndian.PutUint64(header, uint64(n))

	directory := make([]byte, 0, 64*n)
	for i, item := range items {
		length := make([]byte, 32)
		binary.LittleEndian.PutUint64(length, uint64(len(item)))
		directory = append(directory, length...)
		directory = append(directory, ids[i]...)
	}

	raw := append(header, directory...)
	for _, item := range items {
		raw = append(raw, item...)
	}
	return raw
}

func TestDecodeEmptyBundle(t *testing.T) {
	raw := buildBundle(t, nil, nil)
	b, err := Decode(raw)
	require.NoError(t, err)
	assert.Empty(t, b.Items)
}

func TestDecodeSingleItem(t *testing.T) {
	sig := fixedBytes(64, 0x01)
	owner := fixedBytes(32, 0x02)
	tags := []tag.Tag{{Name: "k", Value: "v"}}
	item := buildRawItem(t, sig, owner, tags, []byte("payload"))

	id := wire.SHA256(sig)
	raw := buildBundle(t, [][]byte{item}, [][]byte{id[:]})

	b, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, b.Items, 1)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(id[:]), b.Items[0].ID)
	assert.Equal(t, tag.EncodeB64(tags), b.Items[0].Tags)
}

// Decoding the same multi-item bundle twice must yield byte-identical
// JSON, field order included.
func TestDecodeJSONRoundTripIsStable(t *testing.T) {
	var items [][]byte
	var ids [][]byte
	for i := 0; i < 5; i++ {
		sig := fixedBytes(64, byte(0x10+i))
		owner := fixedBytes(32, byte(0x20+i))
		tags := []tag.Tag{{Name: "idx", Value: string(rune('a' + i))}}
		items = append(items, buildRawItem(t, sig, owner, tags, []byte("payload")))
		id := wire.SHA256(sig)
		ids = append(ids, id[:])
	}
	raw := buildBundle(t, items, ids)

	first, err := Decode(raw)
	require.NoError(t, err)
	second, err := Decode(raw)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestDecodeWithDataRetainsPayload(t *testing.T) {
	sig := fixedBytes(64, 0x09)
	owner := fixedBytes(32, 0x0A)
	item := buildRawItem(t, sig, owner, nil, []byte("hello"))
	id := wire.SHA256(sig)
	raw := buildBundle(t, [][]byte{item}, [][]byte{id[:]})

	withoutData, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "", withoutData.Items[0].Data)

	withData, err := DecodeWithData(raw)
	require.NoError(t, err)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString([]byte("hello")), withData.Items[0].Data)
}

func TestDecodeTrailingBytesIgnored(t *testing.T) {
	sig := fixedBytes(64, 0x03)
	owner := fixedBytes(32, 0x04)
	item := buildRawItem(t, sig, owner, nil, nil)
	id := wire.SHA256(sig)
	raw := buildBundle(t, [][]byte{item}, [][]byte{id[:]})
	raw = append(raw, 0xDE, 0xAD, 0xBE, 0xEF)

	b, err := Decode(raw)
	require.NoError(t, err)
	assert.Len(t, b.Items, 1)
}

func TestDecodeTooShort(t *testing.T) {
	_, err := Decode(fixedBytes(10, 0))
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestDecodeHeadersIncomplete(t *testing.T) {
	header := make([]byte, 32)
	binary.LittleEndian.PutUint64(header, 2)
	// declares 2 items but supplies no directory bytes
	_, err := Decode(header)
	assert.ErrorIs(t, err, ErrHeadersIncomplete)
}

func TestDecodeItemIncomplete(t *testing.T) {
	sig := fixedBytes(64, 0x05)
	owner := fixedBytes(32, 0x06)
	item := buildRawItem(t, sig, owner, nil, nil)
	id := wire.SHA256(sig)
	raw := buildBundle(t, [][]byte{item}, [][]byte{id[:]})
	raw = raw[:len(raw)-5] // truncate the last item's data

	_, err := Decode(raw)
	assert.ErrorIs(t, err, ErrItemIncomplete)
}

func TestDecodeIdMismatch(t *testing.T) {
	sig := fixedBytes(64, 0x07)
	owner := fixedBytes(32, 0x08)
	item := buildRawItem(t, sig, owner, nil, nil)
	wrongID := fixedBytes(32, 0xFF)
	raw := buildBundle(t, [][]byte{item}, [][]byte{wrongID})

	_, err := Decode(raw)
	var mismatch *IdMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 0, mismatch.Index)
}

func TestDecodeOverflowCount(t *testing.T) {
	t.Run("ninth byte set", func(t *testing.T) {
		header := make([]byte, 32)
		header[8] = 1 // first byte past the 64-bit range
		_, err := Decode(header)
		assert.ErrorIs(t, err, wire.ErrOverflow)
	})

	t.Run("all bytes set", func(t *testing.T) {
		header := fixedBytes(32, 0xFF)
		_, err := Decode(header)
		assert.ErrorIs(t, err, wire.ErrOverflow)
	})
}

// A directory entry declaring an item length of 2^63 decodes cleanly
// as a uint64 but wraps negative if cast to int first; it must be
// rejected with ErrItemIncomplete, not panic slicing past the end of
// the bundle.
func TestDecodeHugeItemLengthDoesNotPanic(t *testing.T) {
	header := make([]byte, 32)
	binary.LittleEndian.PutUint64(header, 1)

	directory := make([]byte, 64)
	directory[7] = 0x80 // length = 2^63, id all zero

	raw := append(header, directory...)
	_, err := Decode(raw)
	assert.ErrorIs(t, err, ErrItemIncomplete)
}

// A count that decodes cleanly as a uint64 (low 8 bytes 0xFF, i.e.
// math.MaxUint64) but can never fit the directory bytes actually
// present must be rejected with ErrHeadersIncomplete, not panic when
// cast to int and passed to make.
func TestDecodeMaxU64CountDoesNotPanic(t *testing.T) {
	header := make([]byte, 32)
	for i := 0; i < 8; i++ {
		header[i] = 0xFF
	}
	_, err := Decode(header)
	assert.ErrorIs(t, err, ErrHeadersIncomplete)
}
