package cli

import (
	"github.com/spf13/cobra"

	"github.com/maloquacious/flatdb/internal/db"
	"github.com/maloquacious/flatdb/internal/logger"
	"github.com/maloquacious/flatdb/internal/store/jsonfile"
)

// NewCreateCommand creates the create command.
func NewCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create an empty database document",
		Long:  "Create an empty database document at the --db path, overwriting any existing content.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := jsonfile.Create(opts.DB)
			if err != nil {
				return err
			}
			d, err := db.Open(st)
			if err != nil {
				st.Close()
				return err
			}
			if err := d.Close(); err != nil {
				return err
			}
			logger.Default.Debug("created database", "path", opts.DB)
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(map[string]string{"path": opts.DB})
			}
			f.Textf("created %s", opts.DB)
			return nil
		},
	}
}
