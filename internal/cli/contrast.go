package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/unclebandit/formatkit/internal/hexcolor"
)

// ContrastCmd shows which text colour reads best on a hex background.
func ContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast [#rgb|#rrggbb]",
		Short: "Pick black or white text for a background colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := hexcolor.Hex2RGB(args[0])
			if err != nil {
				return err
			}
			value := hexcolor.ContrastValue(rgb)
			kind := hexcolor.ContrastType(value)

			fg := color.FgWhite
			if kind == hexcolor.Black {
				fg = color.FgBlack
			}
			swatch := color.BgRGB(rgb[0], rgb[1], rgb[2]).Add(fg).Sprint(" Aa ")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", swatch, args[0])
			fmt.Fprintf(out, "  rgb:        %d, %d, %d\n", rgb[0], rgb[1], rgb[2])
			fmt.Fprintf(out, "  brightness: %d\n", value)
			fmt.Fprintf(out, "  text:       %s\n", kind)
			return nil
		},
	}
}
