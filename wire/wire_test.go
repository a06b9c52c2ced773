package wire

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUint64LEZero(t *testing.T) {
	n, err := ReadUint64LE(make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
}

func TestReadUint64LEValue(t *testing.T) {
	s := make([]byte, 32)
	s[0] = 5
	s[1] = 1 // 5 + 1*256 = 261
	n, err := ReadUint64LE(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(261), n)
}

func TestReadUint64LEMaxByteWidth(t *testing.T) {
	s := make([]byte, 8)
	for i := range s {
		s[i] = 0xFF
	}
	n, err := ReadUint64LE(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), n)
}

func TestReadUint64LEOverflow(t *testing.T) {
	s := make([]byte, 32)
	s[31] = 1 // a non-zero byte at position 8+ guarantees overflow
	_, err := ReadUint64LE(s)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSHA256(t *testing.T) {
	data := []byte("hello")
	want := sha256.Sum256(data)
	assert.Equal(t, want, SHA256(data))
}

func TestLookupSignatureKnown(t *testing.T) {
	cases := []struct {
		sigType           uint16
		sigLength, pubLen int
		name              string
	}{
		{SigArweave, 512, 512, "arweave"},
		{SigEd25519, 64, 32, "ed25519"},
		{SigEthereum, 65, 65, "ethereum"},
		{SigSolana, 64, 32, "solana"},
	}
	for _, c := range cases {
		sigLength, pubLength, name, err := LookupSignature(c.sigType)
		require.NoError(t, err)
		assert.Equal(t, c.sigLength, sigLength)
		assert.Equal(t, c.pubLen, pubLength)
		assert.Equal(t, c.name, name)
	}
}

func TestLookupSignatureUnknown(t *testing.T) {
	_, _, _, err := LookupSignature(99)
	var unknown *UnknownSigTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint16(99), unknown.SigType)
}
