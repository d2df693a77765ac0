package cli

import (
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/maloquacious/flatdb/internal/store"
	"github.com/maloquacious/flatdb/internal/store/jsonfile"
)

// TableStatus describes one table in a status report.
type TableStatus struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// Status describes a database document and its tables.
type Status struct {
	Path   string        `json:"path"`
	State  string        `json:"state"`
	Size   uint64        `json:"size_bytes"`
	Tables []TableStatus `json:"tables,omitempty"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the database document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := jsonfile.CheckState(opts.DB)
			if err != nil {
				return err
			}
			st := Status{Path: opts.DB, State: state.String()}
			if info, err := os.Stat(opts.DB); err == nil {
				st.Size = uint64(info.Size())
			}
			if state == store.StateReady || state == store.StateEmpty {
				d, err := openDB(opts)
				if err != nil {
					return err
				}
				defer d.Close()
				names, err := d.Tables()
				if err != nil {
					return err
				}
				sort.Strings(names)
				for _, name := range names {
					rows, err := d.Select(name, 0)
					if err != nil {
						return err
					}
					st.Tables = append(st.Tables, TableStatus{Name: name, Rows: len(rows)})
				}
				if err := d.Close(); err != nil {
					return err
				}
			}
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(st)
			}
			f.Textf("path:  %s", st.Path)
			f.Textf("state: %s", st.State)
			f.Textf("size:  %s", humanize.Bytes(st.Size))
			for _, t := range st.Tables {
				f.Textf("table %s: %s rows", t.Name, humanize.Comma(int64(t.Rows)))
			}
			return nil
		},
	}
}
