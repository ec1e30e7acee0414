package cli

import (
	"github.com/spf13/cobra"

	"gitchurn.dev/gitchurn/internal/engine"
)

// newModifyCmd creates the modify command
func newModifyCmd() *cobra.Command {
	var modifyType string

	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Modify a random subset of tracked files with a line transform",
		Long: `Modify between one and all tracked files under the source root, taken from
the front of the tracked-file list. Each file gets one line transform: a
random word inserted around, or spliced into, a randomly chosen line.

Fails when no tracked files exist under the source root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParseModifyType(modifyType)
			if err != nil {
				return err
			}

			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			return eng.Modify(cmd.Context(), kind)
		},
	}

	cmd.Flags().StringVarP(&modifyType, "type", "t", "random", "Line transform kind: random, prepend, append, prefix or suffix")

	return cmd
}
