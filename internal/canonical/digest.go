package canonical

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex SHA-256 of v's canonical encoding with domain
// separation: SHA256(tag + 0x00 + Marshal(v)). Values that encode equally
// have equal digests under the same tag.
func Digest(tag string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(tag))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
