package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of p. The digest is
// deterministic on purpose: the users file stores it verbatim and equality
// against a recomputed digest is the whole verification contract.
func HashPassword(p string) string {
	sum := sha256.Sum256([]byte(p))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest of plain and compares it with digest.
func VerifyPassword(plain, digest string) bool {
	h := HashPassword(plain)
	return subtle.ConstantTimeCompare([]byte(h), []byte(digest)) == 1
}
