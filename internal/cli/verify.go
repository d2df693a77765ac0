package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maloquacious/flatdb/internal/store"
	"github.com/maloquacious/flatdb/internal/store/jsonfile"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the database document parses",
		Long: "Check the condition of the document at the --db path without changing\n" +
			"it. Exits non-zero when the document is present but unparsable.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := jsonfile.CheckState(opts.DB)
			if err != nil {
				return err
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				if err := f.JSON(map[string]string{"path": opts.DB, "state": state.String()}); err != nil {
					return err
				}
			} else {
				f.Textf("%s: %s", opts.DB, state)
			}
			if state == store.StateCorrupt {
				return NewExitError(ExitFailure, fmt.Sprintf("document is corrupt: %s", opts.DB))
			}
			return nil
		},
	}
}
