package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/salon-api/internal/config"
	"github.com/BruksfildServices01/salon-api/internal/logging"
)

var (
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "salon-api",
	Short: "Salon management API",
	Long: `HTTP JSON API for a salon: clients, services, appointment history
and popular services, backed by PostgreSQL.

Running without a subcommand starts the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = logging.New(cfg)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")
}
