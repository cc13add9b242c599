package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"isincodec/internal/isin"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <value>...",
		Short: "Decode integers (decimal or 0x hex) to ISINs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				v, err := isin.ParseValue(s)
				if err != nil {
					return fmt.Errorf("decode %q: %w", s, err)
				}
				id, err := isin.Decode(v)
				if err != nil {
					return fmt.Errorf("decode %q: %w", s, err)
				}
				appCtx.Log.Debug("decoded", "value", v.Dec(), "isin", id.String())
				fmt.Fprintln(appCtx.Out, id)
			}
			return nil
		},
	}
}
