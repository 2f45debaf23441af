package cmd

import (
	"fmt"

	"github.com/kasuboski/discern/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply database migrations",
	Long:  `apply any pending database migrations and print the schema version`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logger.Get()

		cfg, err := readConfig()
		if err != nil {
			log.Error("failed to read configurations", zap.Error(err))
			return err
		}

		store, err := openStorage(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		defer store.Close()

		version, dirty, err := store.GetMigrationVersion()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s at version %d (dirty: %t)\n", cfg.Storage.FilePath, version, dirty)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
