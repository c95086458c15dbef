package commands

import "github.com/spf13/cobra"

func (c *CLI) newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <name>",
		Short:   "Print the affected versions of a package",
		Example: "  lockscan lookup @ctrl/tinycolor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFrom(cmd)
			if err != nil {
				return err
			}
			return c.app.Lookup(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
}
