package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewDocID returns a store-style document id: exactly 32 hex characters,
// no separators/prefixes.
func NewDocID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
