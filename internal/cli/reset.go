package cli

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	var (
		hard bool
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the baseline branch to the baseline revision",
		Long: `Check out the baseline branch and reset it to the baseline revision, the
most recent commit that touched the control path. When head already equals
the baseline revision no reset is issued.

With --hard the reset discards the working tree, all dev-prefixed branches
are force-deleted and untracked files are removed. This is irreversible; a
confirmation is asked on a terminal unless --yes is passed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, printer, err := newEngine()
			if err != nil {
				return err
			}

			if err := eng.ResetToBaseline(cmd.Context(), hard); err != nil {
				return err
			}
			if !hard {
				return nil
			}

			if !yes && isatty.IsTerminal(os.Stdin.Fd()) {
				confirmed := false
				prompt := &survey.Confirm{
					Message: "Delete all dev branches and untracked files?",
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					printer.Notice("cleanup skipped")
					return nil
				}
			}

			return eng.Cleanup(cmd.Context(), true)
		},
	}

	cmd.Flags().BoolVar(&hard, "hard", false, "Hard reset, then delete dev branches and untracked files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the cleanup confirmation prompt")

	return cmd
}
