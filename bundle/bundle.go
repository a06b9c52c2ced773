package bundle

import (
	"encoding/base64"

	"github.com/PatricioNapoli/axer/dataitem"
	"github.com/PatricioNapoli/axer/wire"
	"github.com/inconshreveable/log15"
)

var log = log15.New("pkg", "bundle")

// Decode parses bundle bytes into a Bundle: read the item-count
// header, walk the 64-byte-per-item directory, and decode each item's
// data in turn. Every item's computed id is checked against its
// directory entry; a mismatch is an IdMismatchError, never silently
// trusted. Items are decoded without their data payload; use
// DecodeWithData to retain it.
func Decode(data []byte) (*Bundle, error) {
	return decode(data, dataitem.Decode)
}

// DecodeWithData behaves like Decode but retains each item's data
// payload, via dataitem.DecodeWithData. Used by the `inspect`
// subcommand, which reads an already-downloaded bundle from disk and
// has no reason to omit the payload a second time.
func DecodeWithData(data []byte) (*Bundle, error) {
	return decode(data, dataitem.DecodeWithData)
}

func decode(data []byte, decodeItem func([]byte) (*dataitem.DataItem, error)) (*Bundle, error) {
	if len(data) < 32 {
		return nil, ErrTooShort
	}

	n, err := wire.ReadUint64LE(data[0:32])
	if err != nil {
		return nil, err
	}

	// n fits a uint64 here but may not fit an int, so bound it against
	// the directory space len(data) can possibly provide before
	// converting: every item needs 64 directory bytes, so a count past
	// that is a truncated header, not a panic.
	maxCount := uint64(len(data)-32) / 64
	if n > maxCount {
		return nil, ErrHeadersIncomplete
	}
	count := int(n)

	dataCursor := 32 + 64*count

	headers := make([]bundleHeader, count)
	for i := 0; i < count; i++ {
		entry := data[32+64*i : 32+64*(i+1)]
		length, err := wire.ReadUint64LE(entry[0:32])
		if err != nil {
			return nil, err
		}
		headers[i] = bundleHeader{
			Length: length,
			ID:     base64.RawURLEncoding.EncodeToString(entry[32:64]),
		}
	}

	items := make([]dataitem.DataItem, count)
	for i, header := range headers {
		// Compare in uint64 space: a declared length past 2^63 would
		// wrap negative as an int and slip under a len(data) bound.
		if header.Length > uint64(len(data)-dataCursor) {
			return nil, ErrItemIncomplete
		}
		end := dataCursor + int(header.Length)

		item, err := decodeItem(data[dataCursor:end])
		if err != nil {
			return nil, err
		}
		if item.ID != header.ID {
			return nil, &IdMismatchError{Index: i, Expected: header.ID, Found: item.ID}
		}

		items[i] = *item
		dataCursor = end
	}

	if dataCursor < len(data) {
		log.Debug("trailing bytes after last item ignored", "count", len(data)-dataCursor)
	}

	return &Bundle{Items: items}, nil
}
