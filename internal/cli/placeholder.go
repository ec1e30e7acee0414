package cli

import (
	"github.com/spf13/cobra"
)

// reservedCommands are registered but not yet implemented. They succeed with
// a notice so scripts probing the surface keep working.
var reservedCommands = []struct {
	use   string
	short string
}{
	{"conflict", "Manufacture a merge conflict (reserved)"},
	{"merge", "Merge a feature branch into the baseline (reserved)"},
	{"munge", "Run a randomized sequence of mutations (reserved)"},
	{"rebase", "Rebase a feature branch onto the baseline (reserved)"},
}

// newPlaceholderCmds creates the reserved no-op commands
func newPlaceholderCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(reservedCommands))
	for _, rc := range reservedCommands {
		cmds = append(cmds, &cobra.Command{
			Use:   rc.use,
			Short: rc.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.Printf("%s is not implemented yet\n", cmd.Name())
				return nil
			},
		})
	}
	return cmds
}
