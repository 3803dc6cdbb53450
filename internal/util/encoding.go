package util

import (
	"encoding/base64"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKD normalization so equivalent passphrase inputs
// derive the same sealing key.
func Normalize(s string) string {
	return norm.NFKD.String(s)
}

// DecodeBase64Segment decodes a base64 segment accepting both the URL-safe
// and standard alphabets, padded or not. Bearer token payloads in the wild
// use either.
func DecodeBase64Segment(s string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.StdEncoding,
	} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	// Return the URL-safe error as the canonical one.
	return base64.RawURLEncoding.DecodeString(s)
}
