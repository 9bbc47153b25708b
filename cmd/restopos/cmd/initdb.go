package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/app"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Drop and recreate every table, then load the demo data",
	RunE:  runInitdb,
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}

func runInitdb(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// InitDb drops every table, so seed after it
	seed := cfg.Catalog.Seed
	cfg.Catalog.Seed = false

	application := app.NewApplication(cfg)
	if err := application.Init(false); err != nil {
		printError("init application", err)
		return err
	}
	defer application.Release()

	application.InitDb()
	if seed {
		application.Seed()
	}
	zap.L().Info("database initialized", zap.String("name", cfg.Database.Name))
	return nil
}
