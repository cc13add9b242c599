// Package crypto exposes the EVM word form of encoded identifiers.
//
// Contents
//
//   - 32-byte big-endian ABI words (Word, WordHex)
//   - Keccak-256 fingerprints of a word for display/logging (Fingerprint)
//
// # Notes
//
// Fingerprint matches Solidity's keccak256(abi.encode(value)) for a uint256
// value, so an identifier can be located in contract storage or event logs
// from the command line.
package crypto
