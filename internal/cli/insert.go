package cli

import (
	"github.com/spf13/cobra"

	"github.com/maloquacious/flatdb/internal/logger"
)

// NewInsertCommand creates the insert command.
func NewInsertCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <table> <value>",
		Short: "Append a value to a table",
		Long: "Append a value to a table and print the assigned row id.\n" +
			"The value is parsed as JSON when possible and stored as a plain string otherwise.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDB(opts)
			if err != nil {
				return err
			}
			defer d.Close()
			id, err := d.Insert(args[0], parseValue(args[1]))
			if err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			logger.Default.Debug("inserted row", "table", args[0], "id", id)
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(map[string]any{"table": args[0], "id": id})
			}
			f.Textf("%d", id)
			return nil
		},
	}
}
