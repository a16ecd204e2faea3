// Package logger provides leveled, colored logging for sala commands.
//
// Secrets are printed on stdout, so every log line goes to stderr (or to
// the writer set in Logger.Out, which tests use to capture output).
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Unlocking %s", repoPath)
//
// Commands create a logger in the root command's PersistentPreRun and pass
// it to workflows.
package logger
