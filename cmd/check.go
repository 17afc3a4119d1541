package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"webapp-standalone/core/appbase"
	"webapp-standalone/core/bootstrap"
	"webapp-standalone/core/config"
	"webapp-standalone/core/database"
	"webapp-standalone/core/deploy"
	"webapp-standalone/core/logger"
	"webapp-standalone/webroot"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the application can be deployed",
	Long:  `Stages the application into a throwaway appBase, loads its descriptor and pings every declared datasource, without binding the listener. Exits non-zero when a datasource is unavailable.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		resolver, err := newResolver()
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig(".", resolver)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		// The appBase is created here so it is removed whether or not Prepare succeeds
		fsys := afero.NewOsFs()
		base, err := appbase.Create(fsys, cfg.Server.Standalone.AppBase)
		if err != nil {
			return err
		}
		defer func() {
			if err := appbase.Remove(fsys, base); err != nil {
				logg.Warn("Failed to remove appBase", zap.Error(err))
			}
		}()

		inst, err := bootstrap.Prepare(cmd.Context(), bootstrap.Options{
			Config:    cfg,
			AppBase:   base,
			Overrides: resolver.Overrides(),
			Environ:   os.Environ(),
			Fs:        fsys,
			Self:      &deploy.SelfSource{Assets: webroot.Assets()},
			Logger:    logg,
		})
		if err != nil {
			return fmt.Errorf("deployment check failed: %w", err)
		}
		defer inst.Registry.Close()

		resources := inst.Registry.Ping(cmd.Context())
		unhealthy := 0
		for _, r := range resources {
			if !r.Healthy {
				unhealthy++
			}
		}

		if jsonOutput {
			report := struct {
				Location   string            `json:"location"`
				DocBase    string            `json:"docBase"`
				Connector  string            `json:"connector"`
				Parameters map[string]string `json:"parameters"`
				Resources  []database.Health `json:"resources"`
			}{
				Location:   inst.Deployment.Location,
				DocBase:    inst.Deployment.DocBase,
				Connector:  inst.Connector.String(),
				Parameters: inst.Deployment.Parameters(),
				Resources:  resources,
			}
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "\n=== Deployment Check ===")
			fmt.Fprintf(out, "Location: %s\n", inst.Deployment.Location)
			fmt.Fprintf(out, "Context Path: %s\n", deploy.DisplayContextPath(inst.Deployment.ContextPath))
			fmt.Fprintf(out, "Connector: %s\n", inst.Connector)
			fmt.Fprintf(out, "Parameters: %d\n", len(inst.Deployment.Parameters()))
			fmt.Fprintf(out, "Datasources: %d (%d unavailable)\n", len(resources), unhealthy)
			for _, r := range resources {
				if !r.Healthy {
					fmt.Fprintf(out, "  %s: %s\n", r.Name, r.Error)
				}
			}
			fmt.Fprintf(out, "Execution Time: %s\n", time.Since(startTime).String())
		}

		logg.Info("Deployment check completed",
			zap.Int("datasources", len(resources)),
			zap.Int("unavailable", unhealthy),
			zap.Duration("execution_time", time.Since(startTime)),
		)

		if unhealthy > 0 {
			return fmt.Errorf("%d datasource(s) unavailable", unhealthy)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print the report as JSON")
	RootCmd.AddCommand(checkCmd)
}
