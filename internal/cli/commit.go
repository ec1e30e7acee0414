package cli

import (
	"github.com/spf13/cobra"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Stage pending changes and commit them with a generated message",
		Long: `Stage all pending changes under the source root and commit them. The commit
message summarizes the changed paths, one status line per path.

If nothing is pending, one randomized mutation is manufactured first so there
is always something to commit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			return eng.ComposeAndCommit(cmd.Context())
		},
	}
}
