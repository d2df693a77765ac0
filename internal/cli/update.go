package cli

import (
	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <table> <id> <value>",
		Short: "Replace the value of a row",
		Long: "Replace the value of the row with the given id, keeping its id and\n" +
			"position. Ids come from select and are only valid against the current\n" +
			"document.",
		Args: cobra.ExactArgs(3),
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
			if err := d.Update(args[0], id, parseValue(args[2])); err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(map[string]any{"table": args[0], "id": id})
			}
			f.Textf("updated %s[%d]", args[0], id)
			return nil
		},
	}
}
