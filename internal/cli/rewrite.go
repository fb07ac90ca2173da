package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dshills/aimend/internal/chat"
	"github.com/dshills/aimend/internal/config"
	"github.com/dshills/aimend/internal/gitctx"
	"github.com/dshills/aimend/internal/logging"
	"github.com/dshills/aimend/internal/message"
	"github.com/dshills/aimend/internal/redact"
)

// Rewrite flags
var (
	flagDiff       bool
	flagAmend      bool
	flagReplace    bool
	flagNoPrompt   bool
	flagShowTokens bool
	flagNoRedact   bool
	flagHost       string
	flagVerbose    bool
)

func init() {
	rootCmd.Flags().BoolVarP(&flagDiff, "diff", "d", false, "Send the diff to the model as extra context")
	rootCmd.Flags().BoolVarP(&flagAmend, "amend", "a", false, "Amend the commit message (requires the HEAD commit)")
	rootCmd.Flags().BoolVarP(&flagReplace, "replace", "r", false, "Replace the existing commit message instead of appending")
	rootCmd.Flags().BoolVar(&flagNoPrompt, "no-prompt", false, "Do not ask whether to amend the HEAD commit")
	rootCmd.Flags().BoolVar(&flagShowTokens, "show-tokens", false, "Log individual tokens as they stream in")
	rootCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "OpenAI-compatible API base URL, for example http://localhost:8080")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagHost != "" {
		m["host"] = flagHost
	}
	return m
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	log := logging.New(flagVerbose || flagShowTokens)
	defer func() { _ = log.Sync() }()

	ref := "HEAD"
	if len(args) == 1 {
		ref = args[0]
	}

	// Resolve before touching the network or the repository.
	if _, err := gitctx.ResolveCommit(ref); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return nil
	}
	isHead, err := gitctx.IsHead(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	if flagAmend && !isHead {
		fmt.Fprintln(os.Stderr, "Error: --amend requires the HEAD commit")
		exitCode = ExitUsageError
		return nil
	}
	promptEnabled := !flagNoPrompt && !flagAmend && isHead

	pretty, err := gitctx.PrettyLine(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	fmt.Fprintf(os.Stdout, "Commit: %s\n", pretty)

	oldMsg, err := gitctx.Show(ref, message.ModeMessage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	fmt.Fprintln(os.Stdout, labelStyle.Render("Old message:"))
	fmt.Fprintln(os.Stdout)
	fmt.Fprint(os.Stdout, renderMessage(oldMsg))
	fmt.Fprintln(os.Stdout, "Generate new commit message...")

	mode := message.ModeDefault
	if flagDiff {
		mode = message.ModeFull
	}
	commitText, err := gitctx.Show(ref, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	commitText = message.Strip(commitText, mode)

	if flagNoRedact {
		cfg.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	if cfg.RedactSecrets {
		var n int
		commitText, n = redact.Secrets(commitText)
		if n > 0 {
			log.Warn("redacted likely secrets from outbound commit text", zap.Int("count", n))
		}
	}

	client := chat.NewClient(cfg.Host, cfg.APIKey, cfg.Timeout(), log)

	var onToken func(string)
	if flagShowTokens {
		onToken = func(tok string) {
			log.Debug("token", zap.String("content", tok))
		}
	}

	generated, err := client.GenerateMessage(context.Background(), commitText, onToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	oldForCompose := ""
	if !flagReplace {
		oldForCompose = message.Strip(oldMsg, message.ModeMessage)
	}
	newMsg := message.Compose(generated, oldForCompose)

	fmt.Fprintln(os.Stdout, labelStyle.Render("New message:"))
	fmt.Fprintln(os.Stdout)
	fmt.Fprint(os.Stdout, renderMessage(newMsg))

	amend := flagAmend
	if promptEnabled && term.IsTerminal(int(os.Stdin.Fd())) {
		amend = confirm(os.Stdin, os.Stdout)
	}
	if !amend {
		return nil
	}

	if err := gitctx.Amend(newMsg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	printHeadLine()
	if err := gitctx.AmendEditor(); err != nil {
		// Aborting the editor pass keeps the amended message.
		log.Debug("amend editor", zap.Error(err))
	}
	printHeadLine()
	return nil
}

func printHeadLine() {
	pretty, err := gitctx.PrettyLine("HEAD")
	if err != nil {
		return
	}
	fmt.Fprintf(os.Stdout, "Commit: %s\n", pretty)
}
