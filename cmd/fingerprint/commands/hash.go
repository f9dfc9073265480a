package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fingerprint/internal/app"
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [paths...]",
		Short: "Print the content fingerprint of files",
		Long: "Print the content fingerprint of every file matched by the given paths or glob patterns.\n" +
			"Directories are walked recursively. Files inside a configured global cache root use the\n" +
			"machine-wide cache, every other file uses the per-project cache.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collect, _ := cmd.Flags().GetBool("collect")

			results, err := c.app.Fingerprint(cmd.Context(), ".", args, app.FingerprintOptions{Collect: collect})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if collect {
					_, _ = fmt.Fprintf(out, "%s %d %d %s\n", r.Hash, r.Length, r.LastModified, r.Path)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s  %s\n", r.Hash, r.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("collect", "c", false, "Print length and modification time along with the fingerprint")

	return cmd
}
