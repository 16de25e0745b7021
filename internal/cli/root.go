package cli

import "github.com/spf13/cobra"

// RootCmd assembles the formatkit command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formatkit",
		Short:         "Number, colour and customer formatting helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Numbers
	root.AddCommand(PlusCmd())
	root.AddCommand(UnplusCmd())
	root.AddCommand(TrimZerosCmd())
	root.AddCommand(BeautifyCmd())
	root.AddCommand(RoundCmd())
	root.AddCommand(CSSTransformCmd())

	// Colours and collections
	root.AddCommand(ContrastCmd())
	root.AddCommand(LabelsCmd())
	root.AddCommand(CustomersCmd())

	return root
}
