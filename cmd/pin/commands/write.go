package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pin/internal/app"
)

func (c *CLI) newWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write [configurations...]",
		Short: "Lock the resolved dependencies of each configuration",
		Long: `Lock the resolved dependencies of each configuration.

Without arguments every configuration of the resolution snapshot is written.
An existing lock is reconciled with the snapshot first and nothing is written
for a configuration whose resolution violates its lock.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, _ := cmd.Flags().GetString("snapshot")
			updateAll, _ := cmd.Flags().GetBool("update-all")
			update, _ := cmd.Flags().GetStringSlice("update")

			return c.app.Write(cmd.Context(), app.WriteOptions{
				Snapshot:       snapshot,
				Configurations: args,
				UpdateAll:      updateAll,
				Update:         update,
			})
		},
	}
	cmd.Flags().StringP("snapshot", "s", "", "Resolution snapshot to read (default: resolved.yaml in the project root)")
	cmd.Flags().BoolP("update-all", "A", false, "Replace every lock with the resolution, without reconciliation")
	cmd.Flags().StringSliceP("update", "u", nil, "Accept drift on group:module or group:* (repeatable)")
	return cmd
}
