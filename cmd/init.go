package cmd

import (
	"github.com/PolarWolf314/sala/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a repository and its master key",
	Long: `Creates the .sala directory and a random master key encrypted under a
master passphrase that you enter twice.

The key length and cipher come from the configuration files.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		repo, cfg, err := openRepository()
		if err != nil {
			return err
		}

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			Repo:     repo,
			Config:   cfg,
			Prompter: newPrompter(cmd),
			Out:      cmd.OutOrStdout(),
			Progress: progress(cmd.OutOrStdout(), cmd.ErrOrStderr()),
			Logger:   Logger,
		})
		if err != nil {
			return err
		}

		printWarnings(result.Warnings)
		return nil
	},
}
