package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <location> <ref>",
		Short: "Find an element in a schema or the schemas it includes",
		Long: "Find the element named ref in the schema at location, searching its includes " +
			"depth first. With --refs, resolve every reference of that element instead.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, _ := cmd.Flags().GetBool("refs")
			if refs {
				return c.resolveRefs(cmd, args[0], args[1])
			}

			el, err := c.app.Resolve(args[0], args[1])
			if err != nil {
				return err
			}
			return c.emit(cmd, el, func(w io.Writer) {
				printElement(w, el, "")
			})
		},
	}
	cmd.Flags().Bool("refs", false, "Resolve the references of the named element")
	return cmd
}

func (c *CLI) resolveRefs(cmd *cobra.Command, location, element string) error {
	resolved, err := c.app.ResolveRefs(location, element)
	if err != nil {
		return err
	}
	return c.emit(cmd, resolved, func(w io.Writer) {
		for _, r := range resolved {
			status := "unresolved"
			if r.Element != nil {
				status = "resolved"
			}
			_, _ = fmt.Fprintf(w, "%s %s %s\n", r.Ref.Ref, occurs(r.Ref), status)
		}
	})
}
