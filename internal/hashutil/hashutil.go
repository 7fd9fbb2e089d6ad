package hashutil

import (
	"crypto/sha256"
	"fmt"
)

// Digest returns a 7-character hex fingerprint of data.
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:4])[:7]
}
