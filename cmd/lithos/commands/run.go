package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lithos/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all configured queries and persist changed results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			return c.app.Run(cmd.Context(), app.RunOptions{
				Watch:       watch,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Keep running and re-run queries when their components change")
	cmd.Flags().IntP("parallelism", "p", 0, "Maximum number of queries executed concurrently (0 uses the configured value)")
	return cmd
}
