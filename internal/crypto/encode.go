package crypto

import (
	"encoding/hex"

	"github.com/holiman/uint256"
)

// WordBytes is the size of an EVM word.
const WordBytes = 32

// Word returns v as a 32-byte big-endian word.
func Word(v *uint256.Int) [WordBytes]byte { return v.Bytes32() }

// WordHex returns the word as 0x followed by 64 lowercase hex digits.
func WordHex(v *uint256.Int) string {
	w := Word(v)
	return "0x" + hex.EncodeToString(w[:])
}
