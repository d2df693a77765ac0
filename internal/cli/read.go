package cli

import (
	"github.com/spf13/cobra"
)

// NewReadCommand creates the read command.
func NewReadCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "read <table>",
		Short: "Print values from a table in row order",
		Long: "Print values from a table in row order. A zero --limit prints every\n" +
			"row, a positive one the first N rows, a negative one the last N rows.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDB(opts)
			if err != nil {
				return err
			}
			defer d.Close()
			values, err := d.Read(args[0], limit)
			if err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(values)
			}
			for _, v := range values {
				f.Textf("%s", renderValue(v))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "row limit (0 all, >0 first n, <0 last n)")
	return cmd
}
