// Package wire implements the low-level, dependency-free primitives
// the rest of the decode path is built from: bounds-checked
// little-endian integer decoding, SHA-256 hashing, and the ANS-104
// signature registry.
package wire

// ReadUint64LE interprets s as a little-endian unsigned integer of
// arbitrary byte width. It walks from the highest index down to the
// lowest, checking both the multiply and the add for overflow at
// every step, so a slice wider than 8 significant bytes only succeeds
// when every byte past position 7 is zero.
//
// ANS-104 reserves 32 bytes for the item count and 8 for tag counters;
// a fixed-width binary.LittleEndian.Uint16/Uint32 read would silently
// truncate a too-wide value, so every header count goes through here
// and a too-wide value surfaces as ErrOverflow instead.
func ReadUint64LE(s []byte) (uint64, error) {
	var acc uint64
	for i := len(s) - 1; i >= 0; i-- {
		next := acc * 256
		if acc != 0 && next/acc != 256 {
			return 0, ErrOverflow
		}
		acc = next
		sum := acc + uint64(s[i])
		if sum < acc {
			return 0, ErrOverflow
		}
		acc = sum
	}
	return acc, nil
}
