// Package cli provides the cobra command registry for gitchurn: an
// explicit, statically-typed mapping from command name to handler.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gitchurn.dev/gitchurn/internal/engine"
	"gitchurn.dev/gitchurn/internal/git"
	"gitchurn.dev/gitchurn/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "gitchurn",
		Short: "Gitchurn simulates randomized evolution of a git working tree",
		Long: `Gitchurn simulates realistic, randomized evolution of a version-controlled
working tree: it creates files, mutates lines, commits, branches and resets,
so tooling that reasons about repository history can be exercised against
varied but reproducible-in-shape histories.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(configFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default .gitchurn.yaml in the working directory)")
	rootCmd.PersistentFlags().Uint64(seedKey, 0, "seed for all randomized decisions (0 = nondeterministic)")
	bindFlagToConfig(rootCmd.PersistentFlags().Lookup(seedKey), seedKey)
	rootCmd.PersistentFlags().BoolP(quietKey, "q", false, "suppress echoing of invoked command output")
	bindFlagToConfig(rootCmd.PersistentFlags().Lookup(quietKey), quietKey)
	rootCmd.PersistentFlags().String(colorKey, defaultColor, "colorize echoed command output (auto, always, never)")
	bindFlagToConfig(rootCmd.PersistentFlags().Lookup(colorKey), colorKey)

	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newModifyCmd())
	rootCmd.AddCommand(newChangeCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newPlaceholderCmds()...)

	return rootCmd
}

// bindFlagToConfig wires a cobra flag to a viper key so config-file and env
// values feed the flag while an explicit flag still wins.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newEngine constructs the per-run printer, repository handle and engine
// from the merged configuration.
func newEngine() (*engine.Engine, *output.Printer, error) {
	printer := output.NewPrinter(output.ParseColorMode(viper.GetString(colorKey)), viper.GetBool(quietKey))

	controlPath := viper.GetString(controlPathKey)
	if controlPath == "" {
		controlPath = installDir()
	}

	repo, err := git.Open(git.Options{
		BaselineBranch: viper.GetString(baselineKey),
		DevPrefix:      viper.GetString(devPrefixKey),
		SourceRoot:     viper.GetString(sourceRootKey),
		ControlPath:    controlPath,
		Printer:        printer,
	})
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(repo, engine.Options{
		Seed:     viper.GetUint64(seedKey),
		MaxDepth: viper.GetInt(maxDepthKey),
		Printer:  printer,
	})
	return eng, printer, nil
}

// installDir returns the directory holding the running executable, the
// default control path for the baseline revision query.
func installDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
