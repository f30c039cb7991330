package commands

import (
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an EXSD file and print its definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := c.app.Parse(args[0])
			if err != nil {
				return err
			}
			return c.emit(cmd, def, func(w io.Writer) {
				printDefinition(w, def)
			})
		},
	}
}

func (c *CLI) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <location>",
		Short: "Load the schema behind a schema:// location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := c.app.Load(args[0])
			if err != nil {
				return err
			}
			return c.emit(cmd, schema, func(w io.Writer) {
				_, _ = io.WriteString(w, "file:     "+schema.Path+"\n")
				printDefinition(w, schema.Definition)
			})
		},
	}
}
