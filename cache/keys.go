package cache

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// ContentKey derives a deterministic cache key from text content using
// BLAKE2b hashing, so identical text always maps to the same entry and
// long page excerpts do not become map keys themselves.
func ContentKey(text string) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
