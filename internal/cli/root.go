package cli

import (
	"github.com/isdelr/vocab-trainer/internal/config"
	"github.com/isdelr/vocab-trainer/internal/database"
	"github.com/isdelr/vocab-trainer/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vocab-trainer",
	Short: "Vocabulary lessons and quick quizzes",
	Long:  `Serves word lessons and multiple-choice quizzes, and manages the word catalog.`,
	// Running without a subcommand starts the server.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importWordsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration, initializes logging and opens the migrated database.
func setup() (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.LogLevel)

	db, err := database.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return cfg, db, nil
}
