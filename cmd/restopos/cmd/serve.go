package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/adminapi"
	"github.com/talkincode/restopos/internal/app"
	"github.com/talkincode/restopos/internal/webserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application := app.NewApplication(cfg)
	if err := application.Init(true); err != nil {
		printError("init application", err)
		return err
	}
	defer application.Release()

	adminapi.Init()
	server := webserver.NewAdminServer(cfg, application)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zap.L().Error("admin api server stopped", zap.Error(err))
		}
		return err
	case <-ctx.Done():
		zap.L().Info("shutting down admin api server")
		return server.Shutdown(context.Background())
	}
}
