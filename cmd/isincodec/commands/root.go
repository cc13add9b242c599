package commands

import (
	"github.com/spf13/cobra"

	"isincodec/internal/app"
)

var (
	format  string
	verbose bool
	appCtx  *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "isincodec",
		Short:        "Convert ISINs to and from 256-bit integers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Config{
				Format:  app.Format(format),
				Verbose: verbose,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&format, "format", "f", string(app.FormatDec), "value format: dec, hex or word")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(encodeCmd(), decodeCmd(), roundtripCmd(), fingerprintCmd())
	return root
}
