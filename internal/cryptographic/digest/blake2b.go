package digest

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies a (ciphertext, marker) pair for caching and lookup.
// Fields are length-prefixed so that no two pairs share an encoding.
func Fingerprint(ciphertext, marker string) string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	for _, field := range []string{ciphertext, marker} {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(field)))
		h.Write(n[:])
		h.Write([]byte(field))
	}
	return hex.EncodeToString(h.Sum(nil))
}
