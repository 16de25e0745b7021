package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unclebandit/formatkit/internal/format"
)

// PlusCmd prefixes a value with '+'.
func PlusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plus [value]",
		Short: "Prefix a value with +",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.AddPlus(args[0]))
			return nil
		},
	}
}

// UnplusCmd strips one leading '+'.
func UnplusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unplus [value]",
		Short: "Remove a leading +",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.RemovePlus(args[0]))
			return nil
		},
	}
}

func TrimZerosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim-zeros [value]",
		Short: "Strip leading zeros from a number, keeping its sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.RemoveFirstZeros(args[0]))
			return nil
		},
	}
}

func BeautifyCmd() *cobra.Command {
	var separator string
	cmd := &cobra.Command{
		Use:   "beautify [value]",
		Short: "Group digits in threes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _ := format.BeautifulNumberWith(args[0], separator)
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&separator, "separator", "s", format.DefaultSeparator, "Thousands separator")
	return cmd
}

func RoundCmd() *cobra.Command {
	var accuracy int
	cmd := &cobra.Command{
		Use:   "round [value]",
		Short: "Round a number to a number of decimals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.ToString(format.Round(value, accuracy)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&accuracy, "accuracy", "a", format.DefaultAccuracy, "Decimal digits to keep")
	return cmd
}

func CSSTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "css-transform [transform]",
		Short: "Print the x/y translation of a CSS matrix() transform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := format.TransformFromCSS(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "x=%d y=%d\n", t.X, t.Y)
			return nil
		},
	}
}
