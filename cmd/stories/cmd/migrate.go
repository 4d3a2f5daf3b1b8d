package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soapboxsocial/stories/pkg/logger"
	"github.com/soapboxsocial/stories/pkg/sql"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "applies pending database migrations",
	RunE:  runMigrate,
}

func runMigrate(*cobra.Command, []string) error {
	config, err := load()
	if err != nil {
		return err
	}

	defer logger.Sync()

	err = sql.Migrate(config.DB)
	if err != nil {
		return err
	}

	logger.Log.Info("database is up to date")
	return nil
}
