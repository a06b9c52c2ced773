package dataitem

import "errors"

// Sentinel errors for the length-accounting failure modes a data item
// decode can hit.
var (
	// ErrTooShort is returned when the item is smaller than the 2
	// bytes required to hold the sig-type field.
	ErrTooShort = errors.New("dataitem: binary too small to hold a signature type")

	// ErrSignatureIncomplete is returned when the item ends before the
	// full signature (of registry-declared length) is present.
	ErrSignatureIncomplete = errors.New("dataitem: binary truncated before end of signature")

	// ErrOwnerIncomplete is returned when the item ends before the
	// full owner public key (of registry-declared length) is present.
	ErrOwnerIncomplete = errors.New("dataitem: binary truncated before end of owner")

	// ErrPresenceFlagMissing is returned when the item ends before the
	// target-present or anchor-present flag byte.
	ErrPresenceFlagMissing = errors.New("dataitem: binary truncated before presence flag")

	// ErrTargetIncomplete is returned when target-present is set but
	// the 32 target bytes that should follow are not all present.
	ErrTargetIncomplete = errors.New("dataitem: binary truncated before end of target")

	// ErrAnchorIncomplete is returned when anchor-present is set but
	// the 32 anchor bytes that should follow are not all present.
	ErrAnchorIncomplete = errors.New("dataitem: binary truncated before end of anchor")

	// ErrTagCountIncomplete is returned when the item ends before the
	// 8-byte tag-count field.
	ErrTagCountIncomplete = errors.New("dataitem: binary truncated before tag count")

	// ErrTagLengthIncomplete is returned when tag-count > 0 but the
	// 8-byte tag-bytes-length field that should follow is missing.
	ErrTagLengthIncomplete = errors.New("dataitem: binary truncated before tag bytes length")

	// ErrTagBytesIncomplete is returned when the declared tag-bytes
	// region runs past the end of the item.
	ErrTagBytesIncomplete = errors.New("dataitem: binary truncated before end of tag bytes")

	// ErrTagCountMismatch is returned when the Avro tag blob decodes to
	// a different number of entries than tag-count declared.
	ErrTagCountMismatch = errors.New("dataitem: decoded tag count does not match declared tag count")
)
