package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacesedan/smartnotes/config"
	"github.com/spacesedan/smartnotes/internal/logging"
)

var Version = "dev"

var cfg config.Config

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:           "smartnotes",
		Short:         "AI Smart Notes from patient surveys",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if env == "" {
				env = "dev"
			}
			config.LoadEnv(env)
			cfg = config.Load()
			logging.InitLogger(cfg.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&env, "env", os.Getenv("APP_ENV"), "Environment whose .env file is loaded")

	cmd.AddCommand(addCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(instantCmd())
	cmd.AddCommand(analyzeCmd())
	cmd.AddCommand(submitCmd())
	cmd.AddCommand(digestCmd())

	return cmd
}
