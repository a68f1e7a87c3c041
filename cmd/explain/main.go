package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bitop-dev/explain"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error("explain failed", "err", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command; it accepts no arguments and no flags beyond
// cobra's help and version.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Ask Gemini how AI works and print the answer",
		Long: `explain sends one fixed prompt to the Gemini API and prints the reply.

The API key is read from GEMINI_API_KEY (or GOOGLE_API_KEY), falling back to a
.env file in the working directory. GEMINI_BASE_URL overrides the endpoint and
EXPLAIN_LOG_LEVEL sets the stderr log level.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := explain.LoadConfig(explain.DefaultEnvFile)
			if err != nil {
				return err
			}
			if err := configureLogger(cfg.LogLevel); err != nil {
				return err
			}
			log.Debug("configuration loaded", "env_file", cfg.EnvFile, "env_file_loaded", cfg.EnvFileLoaded)
			return explain.Run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
}

func configureLogger(level string) error {
	if level == "" {
		log.SetLevel(log.WarnLevel)
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid EXPLAIN_LOG_LEVEL %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return nil
}
