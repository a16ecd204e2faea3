package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/sala/internal/hooks"
	"github.com/PolarWolf314/sala/internal/ui"
	"github.com/PolarWolf314/sala/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

type accessFunc func(context.Context, workflows.AccessOptions) (*workflows.AccessResult, error)

// runAccess runs one of the access workflows on args and prints the result.
func runAccess(cmd *cobra.Command, args []string, fn accessFunc) error {
	Logger.Infof("Starting %s for %d path(s)", cmd.Name(), len(args))

	repo, cfg, err := openRepository()
	if err != nil {
		return err
	}

	runner := hooks.NewRunner(repo.Root)
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()

	result, err := fn(cmd.Context(), workflows.AccessOptions{
		Repo:     repo,
		Config:   cfg,
		Paths:    args,
		Raw:      raw,
		Prompter: newPrompter(cmd),
		Out:      cmd.ErrOrStderr(),
		Hooks:    runner,
		Logger:   Logger,
	})
	if err != nil {
		return err
	}

	printSecrets(cmd.OutOrStdout(), result)
	printWarnings(result.Warnings)
	return nil
}

// printSecrets writes decrypted secrets. Raw output is one secret per line.
func printSecrets(out io.Writer, result *workflows.AccessResult) {
	for _, secret := range result.Secrets {
		if result.Raw {
			fmt.Fprintf(out, "%s\n", secret.Value)
			continue
		}
		fmt.Fprintf(out, "\n%s: %s\n\n", ui.Path.Sprint(secret.Path), secret.Value)
	}
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		Logger.Warnf("%s", w)
	}
}

// progress returns a workflows progress callback that animates a spinner on
// errOut while the key is generated and prints the outcome on out.
// The spinner stays off in verbose and debug mode so log lines are readable.
func progress(out, errOut io.Writer) func(string) func(bool) {
	return func(message string) func(bool) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(errOut))
		s.Suffix = " " + message

		if err := s.Color("cyan"); err != nil {
			Logger.Warnf("Failed to set spinner color: %v", err)
		}

		animate := !verbose && !debug
		if animate {
			s.Start()
		} else {
			Logger.Infof("%s", message)
		}

		return func(success bool) {
			if animate {
				s.Stop()
			}
			outcome := ui.Success.Sprint("done")
			if !success {
				outcome = ui.Error.Sprint("failed")
			}
			fmt.Fprintln(out, message+" "+outcome)
		}
	}
}
