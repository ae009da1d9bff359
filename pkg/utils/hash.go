package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashQuery creates a SHA256 hash of a search query string. Used for
// consistent, safe Redis cache keys.
func HashQuery(query string) string {
	h := sha256.New()
	h.Write([]byte(query))
	return hex.EncodeToString(h.Sum(nil))
}
