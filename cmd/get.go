package cmd

import (
	"github.com/PolarWolf314/sala/internal/workflows"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get path...",
	Short: "Decrypt and print secrets",
	Args:  usageArgs(cobra.MinimumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAccess(cmd, args, workflows.Get)
	},
}
