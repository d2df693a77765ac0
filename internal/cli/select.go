package cli

import (
	"github.com/spf13/cobra"
)

// NewSelectCommand creates the select command.
func NewSelectCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "select <table>",
		Short: "Print rows with their ids",
		Long: "Print rows from a table with their ids, in row order. The printed ids\n" +
			"can be passed to update and delete while the document is unchanged;\n" +
			"they are renumbered positionally on every load.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDB(opts)
			if err != nil {
				return err
			}
			defer d.Close()
			rows, err := d.Select(args[0], limit)
			if err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(rows)
			}
			for _, r := range rows {
				f.Textf("%d\t%s", r.ID, renderValue(r.Value))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "row limit (0 all, >0 first n, <0 last n)")
	return cmd
}
