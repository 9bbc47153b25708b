package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talkincode/restopos/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restopos",
	Short: "RestoPOS - restaurant back office",
	Long: `RestoPOS serves the product catalog, customer and dashboard admin API
of a restaurant point of sale.

Commands:
  serve   - run the admin API and background jobs
  initdb  - drop and recreate the database schema
  token   - issue an operator session token`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: built-in defaults)")
}

func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		printError("load config", err)
		return nil, err
	}
	return cfg, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
