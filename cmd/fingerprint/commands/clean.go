package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fingerprint/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Drop recorded fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			global, _ := cmd.Flags().GetBool("global")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Global: global})
		},
	}

	cmd.Flags().BoolP("global", "g", false, "Also clear the machine-wide fingerprint cache")

	return cmd
}
