package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lithos/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated query outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				All: all,
			})
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Remove the whole build cache and public output tree")

	return cmd
}
