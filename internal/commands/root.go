package commands

import (
	"database/sql"
	"fmt"
	"io"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"crane-recon/internal/config"
	"crane-recon/internal/repository"
	"crane-recon/pkg/logger"
)

// Version is set at build time
var Version = "dev"

// dependencies are the collaborators commands reach outside the process for
type dependencies struct {
	openImportRepository func() (repository.ImportRepository, io.Closer, error)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(dependencies{openImportRepository: openImportRepository})
}

func newRootCommand(deps dependencies) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "reconctl",
		Short:   "Bank statement import and reconciliation tools",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return fmt.Errorf("loading .env: %w", err)
			}
			logger.SetOutput(cmd.ErrOrStderr())
			logger.Init(logLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newImportCommand(deps))
	rootCmd.AddCommand(newClassifyCommand())

	return rootCmd
}

func openImportRepository() (repository.ImportRepository, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	return repository.NewImportRepository(db), db, nil
}
