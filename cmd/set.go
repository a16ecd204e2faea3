package cmd

import (
	"github.com/PolarWolf314/sala/internal/workflows"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set path...",
	Short: "Encrypt and store new secrets",
	Long: `Stores a new secret at every path, replacing any existing one.

If a password generator is configured, its suggestions are listed and one
can be picked by number. Missing parent directories are created.`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAccess(cmd, args, workflows.Set)
	},
}
