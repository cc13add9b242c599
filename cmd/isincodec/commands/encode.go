package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"isincodec/internal/isin"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <isin>...",
		Short: "Encode ISINs as integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				v, err := isin.Encode(s)
				if err != nil {
					return fmt.Errorf("encode %q: %w", s, err)
				}
				appCtx.Log.Debug("encoded", "isin", s, "value", v.Dec())
				fmt.Fprintln(appCtx.Out, appCtx.FormatValue(v))
			}
			return nil
		},
	}
}
