package cli

import (
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}

// NewVersionCommand creates the version command.
func NewVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flatdb version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := NewFormatter(opts, cmd)
			if f.JSONMode() {
				return f.JSON(map[string]string{"version": version.String()})
			}
			f.Textf("%s", version.String())
			return nil
		},
	}
}
