package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"isincodec/internal/crypto"
	"isincodec/internal/isin"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <isin>",
		Short: "Print the EVM word and Keccak-256 fingerprint of an ISIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := isin.Encode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(appCtx.Out, "Word: %s\nFingerprint: %s\n", crypto.WordHex(v), crypto.Fingerprint(v))
			return nil
		},
	}
}
