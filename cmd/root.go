package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/sala/internal/configs"
	kerrors "github.com/PolarWolf314/sala/internal/errors"
	"github.com/PolarWolf314/sala/internal/gpg"
	logger "github.com/PolarWolf314/sala/internal/logging"
	"github.com/PolarWolf314/sala/internal/prompt"
	"github.com/PolarWolf314/sala/internal/secrets"
	"github.com/PolarWolf314/sala/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DirectoryEnvVar names the repository when -C is not given.
const DirectoryEnvVar = configs.DirectoryEnvVar

// Version is set at build time.
var Version = "dev"

var (
	verbose   bool
	debug     bool
	raw       bool
	directory string
	Logger    logger.Logger

	// newTool and newPrompter are replaced by tests.
	newTool     = func(log logger.Logger) gpg.Tool { return gpg.NewGnuPG(log) }
	newPrompter = func(cmd *cobra.Command) prompt.Prompter {
		return prompt.NewTerminal(os.Stdin, cmd.ErrOrStderr())
	}

	RootCmd = &cobra.Command{
		Use:   "sala [path...]",
		Short: "Store passwords and other sensitive information in encrypted files",
		Long: `sala keeps one secret per file. Every file is encrypted with gpg under a
random master key, which is itself encrypted under your master passphrase.

Running sala with a path reads the secret if the file exists and stores a
new one otherwise.

The repository is the current directory, the directory named by -C, or
$SALADIR.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Running %s with verbose=%t, debug=%t, raw=%t", cmd.Name(), verbose, debug, raw)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return kerrors.ErrUsage
			}
			return runAccess(cmd, args, workflows.GetOrSet)
		},
	}
)

func init() {
	RootCmd.Version = Version
	RootCmd.PersistentFlags().BoolVarP(&raw, "raw", "r", false, "print secrets without decoration, for use in scripts")
	RootCmd.PersistentFlags().StringVarP(&directory, "directory", "C", "", "use `dir` as the repository instead of the current directory")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(setCmd)
}

func usageError(err error) error {
	return fmt.Errorf("%w: %v", kerrors.ErrUsage, err)
}

// usageArgs reports argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return RootCmd.ExecuteContext(context.Background())
}

// repoDir resolves the repository directory from -C, then $SALADIR, then the
// working directory. It must exist and be a directory.
func repoDir() (string, error) {
	dir := directory
	if dir == "" {
		dir = os.Getenv(DirectoryEnvVar)
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", kerrors.NewPathError(kerrors.ErrCannotChangeDirectory, ".")
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", kerrors.NewPathError(kerrors.ErrCannotChangeDirectory, dir)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", kerrors.NewPathError(kerrors.ErrCannotChangeDirectory, dir)
	}
	return abs, nil
}

// openRepository resolves the repository and loads its configuration.
func openRepository() (*secrets.Repository, *configs.Config, error) {
	root, err := repoDir()
	if err != nil {
		return nil, nil, err
	}
	Logger.Debugf("Repository: %s", root)

	cfg, err := configs.Load(root)
	if err != nil {
		return nil, nil, err
	}
	Logger.Debugf("Config: cipher=%s, key-length=%d, password-generator=%q", cfg.Cipher, cfg.KeyLength, cfg.PasswordGenerator)

	return secrets.Open(root, newTool(Logger), Logger), cfg, nil
}

// Helper functions for testing

// ResetGlobalState resets all flags and global variables to their defaults.
func ResetGlobalState() {
	resetFlags(RootCmd.Flags())
	for _, c := range RootCmd.Commands() {
		resetFlags(c.Flags())
	}
	Logger = logger.Logger{}
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// SetTool replaces the encryption tool used by every command.
func SetTool(tool gpg.Tool) {
	newTool = func(logger.Logger) gpg.Tool { return tool }
}

// SetPrompter replaces the source of passphrases and new secrets.
func SetPrompter(p prompt.Prompter) {
	newPrompter = func(*cobra.Command) prompt.Prompter { return p }
}
