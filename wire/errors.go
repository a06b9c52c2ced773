package wire

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by ReadUint64LE when a slice has a non-zero
// byte at position 8 or beyond.
var ErrOverflow = errors.New("wire: integer overflow decoding little-endian count")

// ErrUnknownSigType is wrapped by UnknownSigTypeError; kept as a
// sentinel so callers can errors.Is against the general case.
var ErrUnknownSigType = errors.New("wire: unsupported signature type")

// UnknownSigTypeError reports a sig-type value absent from the
// signature registry.
type UnknownSigTypeError struct {
	SigType uint16
}

func (e *UnknownSigTypeError) Error() string {
	return fmt.Sprintf("wire: signature type %d is not supported", e.SigType)
}

func (e *UnknownSigTypeError) Unwrap() error { return ErrUnknownSigType }
