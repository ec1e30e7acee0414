package cli

import (
	"github.com/spf13/cobra"
)

// newCreateCmd creates the create command
func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new file at a randomized path with randomized content",
		Long: `Create a new file under the source root: a random directory depth of
word-named segments, a random word as file name, and one to three random
words as content.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, printer, err := newEngine()
			if err != nil {
				return err
			}

			path, err := eng.Create(cmd.Context())
			if err != nil {
				return err
			}
			printer.Notice("created %s", path)
			return nil
		},
	}
}
