package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/aimend/internal/chat"
	"github.com/dshills/aimend/internal/config"
	"github.com/dshills/aimend/internal/logging"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models exposed by the completion service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		log := logging.New(flagVerbose)
		defer func() { _ = log.Sync() }()

		client := chat.NewClient(cfg.Host, cfg.APIKey, cfg.Timeout(), log)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		models, err := client.Models(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if len(models) == 0 {
			fmt.Fprintln(os.Stdout, "The service reports no models.")
			return nil
		}
		for _, m := range models {
			fmt.Fprintf(os.Stdout, "  - %s\n", m)
		}
		return nil
	},
}
