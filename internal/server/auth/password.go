package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// The salt is fixed so that the digest is deterministic: stored records
// require DigestPassword(p) to be stable across calls and across processes.
// This means identical passwords share a digest; per-record random salting
// would break the stored format.
var digestSalt = []byte("globoclima/credentials/v1")

const (
	digestIterations = 4096
	digestKeyLength  = 32
)

// DigestPassword returns the hex-encoded one-way digest of plaintext.
// Any string is a valid input; digesting never fails.
func DigestPassword(plaintext string) string {
	key := pbkdf2.Key([]byte(plaintext), digestSalt, digestIterations, digestKeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the digest of plaintext and compares it to the
// stored digest in constant time.
func VerifyPassword(plaintext, digest string) bool {
	candidate := DigestPassword(plaintext)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}
