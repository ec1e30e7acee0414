package cli

import (
	"github.com/spf13/cobra"
)

// newChangeCmd creates the change command
func newChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change",
		Short: "Perform one randomized mutation, create or modify auto-selected",
		Long: `Perform exactly one mutation on the working tree. With no tracked files
under the source root this is always a create; otherwise create and modify
are chosen uniformly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			return eng.DecideOperation(cmd.Context())
		},
	}
}
