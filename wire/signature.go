package wire

// Signature type identifiers, per the ANS-104 signature registry.
const (
	SigArweave  uint16 = 1
	SigEd25519  uint16 = 2
	SigEthereum uint16 = 3
	SigSolana   uint16 = 4
)

// sigMeta describes the fixed signature and public-key byte widths
// for one signature scheme.
type sigMeta struct {
	Name      string
	SigLength int
	PubLength int
}

// signatureRegistry is the static sig-type -> (name, sig length, pub
// length) table. Lookup failure is a decode error
// (UnknownSigTypeError), never a panic.
var signatureRegistry = map[uint16]sigMeta{
	SigArweave:  {Name: "arweave", SigLength: 512, PubLength: 512},
	SigEd25519:  {Name: "ed25519", SigLength: 64, PubLength: 32},
	SigEthereum: {Name: "ethereum", SigLength: 65, PubLength: 65},
	SigSolana:   {Name: "solana", SigLength: 64, PubLength: 32},
}

// LookupSignature returns the (sig length, pub length, name) triple
// for sigType, or UnknownSigTypeError if sigType is not registered.
func LookupSignature(sigType uint16) (sigLength int, pubLength int, name string, err error) {
	meta, ok := signatureRegistry[sigType]
	if !ok {
		return 0, 0, "", &UnknownSigTypeError{SigType: sigType}
	}
	return meta.SigLength, meta.PubLength, meta.Name, nil
}
