package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"lucidscript/cmd/lucidscript/cmd/cmdutil"
	"lucidscript/internal/app/common"
	"lucidscript/internal/app/repository/migrate"
	"lucidscript/internal/app/repository/pg"
	"lucidscript/internal/app/repository/sqlite"
)

var (
	afterID   int64
	batchSize int
)

func init() {
	Cmd.Flags().Int64Var(&afterID, "after-id", 0, "only copy records with a larger id")
	Cmd.Flags().IntVar(&batchSize, "batch-size", 500, "records per batch")
}

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy export history from SQLite to PostgreSQL",
	Long: `Copy export history from the SQLite database at DATABASE_PATH to the
PostgreSQL database at DATABASE_URL. Run it again with --after-id to resume.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := cmdutil.LoadSettings()
		if err != nil {
			return err
		}
		if settings.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
		logger, err := common.NewLogger(!settings.IsProduction(), settings.Server.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		src, err := sqlite.NewSQLiteDB(settings.Storage.DatabasePath)
		if err != nil {
			return err
		}
		defer src.Close()

		dst, err := pg.NewPostgresDB(settings.Storage.DatabaseURL)
		if err != nil {
			return err
		}
		defer dst.Close()
		if err := dst.Migrate(cmd.Context()); err != nil {
			return err
		}

		lastID, err := migrate.Copy(cmd.Context(), src, dst, afterID, batchSize, logger)
		if err != nil {
			return fmt.Errorf("%w (resume with --after-id %d)", err, lastID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migration finished, last copied id %d\n", lastID)
		return nil
	},
}
