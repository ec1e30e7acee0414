package cli

import (
	"github.com/spf13/cobra"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	var home bool

	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Create a randomly named feature branch, or return to the baseline branch",
		Long: `Create and check out a new feature branch named with the configured dev
prefix and a random word (default dev/<word>), branched from the current head.

With --home, check out the baseline branch instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, printer, err := newEngine()
			if err != nil {
				return err
			}

			if home {
				return eng.ReturnToBaseline(cmd.Context())
			}

			name, err := eng.CreateFeatureBranch(cmd.Context())
			if err != nil {
				return err
			}
			printer.Notice("created branch %s", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&home, "home", false, "Check out the baseline branch instead of creating a feature branch")

	return cmd
}
