// Package commands defines the isincodec CLI.
//
// Commands
//
//   - encode       Print the integer value of one or more ISINs
//   - decode       Print the ISIN for one or more values (decimal or 0x hex)
//   - roundtrip    Encode an ISIN and decode it again
//   - fingerprint  Print the EVM word and its Keccak-256 fingerprint
//
// # Implementation
//
// The root command builds an app.App from the persistent flags before any
// subcommand runs, so handlers share one logger and value formatter.
package commands
