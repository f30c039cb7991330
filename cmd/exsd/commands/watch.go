package commands

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.trai.ch/exsd/internal/core/ports"
)

type changeLine struct {
	Path      string `json:"path"`
	Operation string `json:"operation"`
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the index in sync with schema files until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			var mu sync.Mutex
			return c.app.Watch(cmd.Context(), func(events []ports.WatchEvent) {
				mu.Lock()
				defer mu.Unlock()
				for _, e := range events {
					if c.json {
						_ = enc.Encode(changeLine{Path: e.Path, Operation: e.Operation.String()})
						continue
					}
					_, _ = fmt.Fprintf(out, "%s %s\n", e.Operation, e.Path)
				}
			})
		},
	}
}
