package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pin/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [configurations...]",
		Short: "Report drift between the resolution and the locks",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, _ := cmd.Flags().GetString("snapshot")
			return c.app.Check(cmd.Context(), app.CheckOptions{
				Snapshot:       snapshot,
				Configurations: args,
			})
		},
	}
	cmd.Flags().StringP("snapshot", "s", "", "Resolution snapshot to read (default: resolved.yaml in the project root)")
	return cmd
}
