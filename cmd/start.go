package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webapp-standalone/core/bootstrap"
	"webapp-standalone/core/config"
	"webapp-standalone/core/deploy"
	"webapp-standalone/core/logger"
	"webapp-standalone/webroot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the standalone server",
	Long:  `Deploys the application and serves it until SIGINT or SIGTERM is received.`,
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, _ []string) error {
	// 1. Resolve configuration
	resolver, err := newResolver()
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(".", resolver)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Deploy and bind
	inst, err := bootstrap.Prepare(ctx, bootstrap.Options{
		Config:    cfg,
		Overrides: resolver.Overrides(),
		Environ:   os.Environ(),
		Self:      &deploy.SelfSource{Assets: webroot.Assets()},
		Logger:    logg,
	})
	if err != nil {
		logg.Error("Error starting embedded server properly", zap.Error(err), zap.Stack("stack"))
		return fmt.Errorf("%w: %v", errReported, err)
	}

	// 4. Serve until signalled
	if err := inst.Run(ctx); err != nil {
		logg.Error("Error starting embedded server properly", zap.Error(err), zap.Stack("stack"))
		return fmt.Errorf("%w: %v", errReported, err)
	}
	logg.Info("Server stopped")
	return nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
