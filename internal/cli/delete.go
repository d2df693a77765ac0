package cli

import (
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <table> <id>",
		Short: "Remove a row by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			d, err := openDB(opts)
			if err != nil {
				return err
			}
			defer d.Close()
			if err := d.Delete(args[0], id); err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(map[string]any{"table": args[0], "id": id})
			}
			f.Textf("deleted %s[%d]", args[0], id)
			return nil
		},
	}
}
