package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Rebuild the persisted definition index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			result, err := c.app.Index(cmd.Context(), force)
			if err != nil {
				return err
			}
			return c.emit(cmd, result, func(w io.Writer) {
				if result.UpToDate {
					_, _ = fmt.Fprintf(w, "index is up to date (%d schema files)\n", result.Files)
					return
				}
				_, _ = fmt.Fprintf(w, "indexed %d of %d schema files (%d skipped)\n",
					result.Indexed, result.Files, result.Skipped)
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild even when the schema files did not change")
	return cmd
}
