package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/mirror"
)

func newSizeCmd() *cobra.Command {
	var (
		modeName string
		ppu      float64
	)

	cmd := &cobra.Command{
		Use:   "size [sprite]",
		Short: "Print the native layout size of a mirrored sprite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := mirror.ParseMode(modeName)
			if err != nil {
				return err
			}
			sprite, err := mirror.LoadSprite(args[0])
			if err != nil {
				return err
			}

			sz := sprite.Size()
			size := mirror.NativeSize(mode, sz.X, sz.Y, ppu)
			loggerFromContext(cmd.Context()).Debug("sprite", "format", sprite.Format, "pixels", sz)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%g x %g\n", size.X, size.Y)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "quadrant", "mirror mode: horizontal, vertical, quadrant")
	cmd.Flags().Float64Var(&ppu, "ppu", 1, "sprite pixels per layout unit")
	return cmd
}
