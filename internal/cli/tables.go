package cli

import (
	"sort"

	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List all tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDB(opts)
			if err != nil {
				return err
			}
			defer d.Close()
			names, err := d.Tables()
			if err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			// Table order is not defined by the store; sort for stable output.
			sort.Strings(names)
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(names)
			}
			for _, name := range names {
				f.Textf("%s", name)
			}
			return nil
		},
	}
}

// NewCreateTableCommand creates the create-table command.
func NewCreateTableCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create-table <table>",
		Short: "Create an empty table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDB(opts)
			if err != nil {
				return err
			}
			defer d.Close()
			if err := d.CreateTable(args[0]); err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(map[string]string{"table": args[0]})
			}
			f.Textf("created table %s", args[0])
			return nil
		},
	}
}

// NewDropTableCommand creates the drop-table command.
func NewDropTableCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drop-table <table>",
		Short: "Delete a table and all of its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDB(opts)
			if err != nil {
				return err
			}
			defer d.Close()
			if err := d.DropTable(args[0]); err != nil {
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(map[string]string{"table": args[0]})
			}
			f.Textf("dropped table %s", args[0])
			return nil
		},
	}
}
