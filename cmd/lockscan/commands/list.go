package commands

import "github.com/spf13/cobra"

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the loaded affected list",
		Long:  "Print the number of entries, the list fingerprint and every affected package name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := optionsFrom(cmd)
			if err != nil {
				return err
			}
			return c.app.List(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
}
