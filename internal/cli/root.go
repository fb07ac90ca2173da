package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "aimend [commit]",
	Short: "Improve a git commit message with a local LLM",
	Long:  "Aimend sends a commit's message, and optionally its diff, to a locally hosted OpenAI-compatible completion service and splices the generated message back, appending it under a marker line or replacing the message outright.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRewrite,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print aimend version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "aimend version %s\n", version)
	},
}
