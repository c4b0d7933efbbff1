package object

import (
	"crypto/sha1"
	"encoding/hex"
)

// HashBytes computes the SHA-1 digest of the full serialized object bytes
// (header included) and returns it as a lowercase hex-encoded Hash.
func HashBytes(raw []byte) Hash {
	sum := sha1.Sum(raw)
	return Hash(hex.EncodeToString(sum[:]))
}

// ValidHash reports whether h is exactly 40 hexadecimal characters, in
// either case. Stored paths are always derived from the lowercase digest,
// so looking up an uppercase form resolves to a path that does not exist
// and reports not-found rather than a wrong object.
func ValidHash(h Hash) bool {
	if len(h) != 40 {
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
