package bundle

import (
	"errors"
	"fmt"
)

// Sentinel errors for the length-accounting failure modes a bundle
// decode can hit.
var (
	// ErrTooShort is returned when a bundle is smaller than the 32
	// byte minimum required to hold the item-count header.
	ErrTooShort = errors.New("bundle: binary length must be at least 32 bytes")

	// ErrHeadersIncomplete is returned when the bundle is shorter than
	// 32 + 64*N, i.e. the item directory itself is truncated.
	ErrHeadersIncomplete = errors.New("bundle: item directory truncated")

	// ErrItemIncomplete is returned when an item's declared length
	// runs past the end of the bundle bytes.
	ErrItemIncomplete = errors.New("bundle: item data truncated")
)

// IdMismatchError reports a decoded item whose computed id does not
// match the id recorded in the bundle's item directory.
type IdMismatchError struct {
	Index    int
	Expected string
	Found    string
}

func (e *IdMismatchError) Error() string {
	return fmt.Sprintf("bundle: item %d id mismatch: expected %q, found %q", e.Index, e.Expected, e.Found)
}
