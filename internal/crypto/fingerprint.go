package crypto

import (
	"encoding/hex"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a hex Keccak-256 digest of the word form of v.
//
// This is the legacy Keccak padding used by the EVM, not FIPS-202 SHA3-256.
func Fingerprint(v *uint256.Int) string {
	w := Word(v)
	h := sha3.NewLegacyKeccak256()
	h.Write(w[:])
	return hex.EncodeToString(h.Sum(nil))
}
