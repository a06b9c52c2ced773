package dataitem

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/PatricioNapoli/axer/tag"
	"github.com/PatricioNapoli/axer/wire"
)

// Decode parses a single signed data item from raw bundle-entry bytes.
// The data payload is omitted (Data stays ""); use DecodeWithData to
// retain it.
func Decode(raw []byte) (*DataItem, error) {
	return decode(raw, false)
}

// DecodeWithData behaves like Decode but additionally base64url-encodes
// the bytes that follow the tag region into Data. Used by the inspect
// subcommand and by anything that needs to re-derive the original item
// payload without a second fetch.
func DecodeWithData(raw []byte) (*DataItem, error) {
	return decode(raw, true)
}

func decode(raw []byte, withData bool) (*DataItem, error) {
	n := len(raw)
	if n < 2 {
		return nil, ErrTooShort
	}

	sigType := binary.LittleEndian.Uint16(raw[0:2])
	sigLength, pubLength, _, err := wire.LookupSignature(sigType)
	if err != nil {
		return nil, err
	}

	sigEnd := 2 + sigLength
	if n < sigEnd {
		return nil, ErrSignatureIncomplete
	}
	signature := raw[2:sigEnd]
	rawID := wire.SHA256(signature)

	ownerEnd := sigEnd + pubLength
	if n < ownerEnd {
		return nil, ErrOwnerIncomplete
	}
	owner := raw[sigEnd:ownerEnd]

	pos := ownerEnd
	target, pos, err := readOptional32(raw, pos, ErrTargetIncomplete)
	if err != nil {
		return nil, err
	}
	anchor, pos, err := readOptional32(raw, pos, ErrAnchorIncomplete)
	if err != nil {
		return nil, err
	}

	if n < pos+8 {
		return nil, ErrTagCountIncomplete
	}
	tagCount, err := wire.ReadUint64LE(raw[pos : pos+8])
	if err != nil {
		return nil, err
	}
	pos += 8

	tags := []tag.Tag{}
	if tagCount > 0 {
		if n < pos+8 {
			return nil, ErrTagLengthIncomplete
		}
		tagBytesLen, err := wire.ReadUint64LE(raw[pos : pos+8])
		if err != nil {
			return nil, err
		}
		pos += 8

		if uint64(n-pos) < tagBytesLen {
			return nil, ErrTagBytesIncomplete
		}
		tags, err = tag.Decode(raw[pos : pos+int(tagBytesLen)])
		if err != nil {
			return nil, err
		}
		if uint64(len(tags)) != tagCount {
			return nil, ErrTagCountMismatch
		}
		tags = tag.EncodeB64(tags)
		pos += int(tagBytesLen)
	}

	item := &DataItem{
		ID:            base64.RawURLEncoding.EncodeToString(rawID[:]),
		SignatureType: sigType,
		Signature:     base64.RawURLEncoding.EncodeToString(signature),
		Owner:         base64.RawURLEncoding.EncodeToString(owner),
		Target:        target,
		Anchor:        anchor,
		Tags:          tags,
	}
	if withData {
		item.Data = base64.RawURLEncoding.EncodeToString(raw[pos:])
	}
	return item, nil
}

// readOptional32 reads a presence-flag byte at position, and if it
// equals 1, the 32 base64url-encoded bytes that follow. Any flag value
// other than 1 means absent, matching the wire idiom the ecosystem
// uses. Returns the encoded bytes (the empty string when absent) and
// the position advanced past the flag (and the 32 bytes, if present).
func readOptional32(data []byte, position int, incomplete error) (string, int, error) {
	if len(data) <= position {
		return "", 0, ErrPresenceFlagMissing
	}
	if data[position] != 1 {
		return "", position + 1, nil
	}
	end := position + 1 + 32
	if len(data) < end {
		return "", 0, incomplete
	}
	return base64.RawURLEncoding.EncodeToString(data[position+1 : end]), end, nil
}
