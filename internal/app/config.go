package app

import (
	"fmt"
	"io"
)

// Format selects how encoded values are printed.
type Format string

const (
	FormatDec  Format = "dec"  // base-10
	FormatHex  Format = "hex"  // 0x-prefixed, no padding
	FormatWord Format = "word" // 0x-prefixed 32-byte EVM word
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Format  Format    // value output format, defaults to dec
	Verbose bool      // emit debug records
	Out     io.Writer // command output, defaults to os.Stdout
	Err     io.Writer // log output, defaults to os.Stderr
}

// Validate reports an unknown output format.
func (c Config) Validate() error {
	switch c.Format {
	case "", FormatDec, FormatHex, FormatWord:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want dec, hex or word)", c.Format)
	}
}
