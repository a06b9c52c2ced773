package arweave

import (
	"encoding/base64"

	"github.com/PatricioNapoli/axer/tag"
)

const (
	bundleFormatTag   = "Bundle-Format"
	bundleVersionTag  = "Bundle-Version"
	wantBundleFormat  = "binary"
	wantBundleVersion = "2.0.0"
)

// Validate checks that tx's tags declare it a supported ANS-104 binary
// bundle. An instance that passes is safe to decode; otherwise it is
// rejected before any decode attempt.
func Validate(tx *ParentTx) error {
	format, ok := findTag(tx.Tags, bundleFormatTag)
	if !ok || format != wantBundleFormat {
		return &InvalidBundleFormatError{Expected: wantBundleFormat, Found: format}
	}

	version, ok := findTag(tx.Tags, bundleVersionTag)
	if !ok || version != wantBundleVersion {
		return &InvalidBundleVersionError{Expected: wantBundleVersion, Found: version}
	}

	return nil
}

// findTag locates name among tx.Tags and returns its base64url-decoded
// value. Parent tx tags arrive as JSON already base64url-encoded text
// (unlike a data item's Avro tag blob), so decoding here, once, is
// cheaper than decoding every tag up front.
func findTag(tags []tag.Tag, name string) (string, bool) {
	for _, t := range tags {
		decodedName, err := base64.RawURLEncoding.DecodeString(t.Name)
		if err != nil || string(decodedName) != name {
			continue
		}
		decodedValue, err := base64.RawURLEncoding.DecodeString(t.Value)
		if err != nil {
			return "", false
		}
		return string(decodedValue), true
	}
	return "", false
}
