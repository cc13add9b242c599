package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"isincodec/internal/isin"
)

func roundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <isin>",
		Short: "Encode an ISIN and decode the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := isin.Encode(args[0])
			if err != nil {
				return err
			}
			id, err := isin.Decode(v)
			if err != nil {
				return err
			}
			fmt.Fprintf(appCtx.Out, "Encoded: %s\nDecoded: %s\n", appCtx.FormatValue(v), id)
			return nil
		},
	}
}
