package cmd

import (
	"errors"
	"fmt"
	"os"

	"webapp-standalone/core/logger"
	"webapp-standalone/core/settings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errReported marks errors that were already logged with the configured logger.
var errReported = errors.New("reported")

var defines []string

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it starts the server, like start.
var RootCmd = &cobra.Command{
	Use:   "standalone",
	Short: "Standalone web application host",
	Long: `Standalone hosts a single packaged web application on an embedded HTTP listener.
It is configured from TOMCAT_STANDALONE_*, TOMCAT_CONNECTOR_PROPERTIES and CONTEXT_*
environment variables; -D KEY=VALUE definitions take precedence over the environment.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStart,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			// Console format with the debug config gives ISO8601 timestamps
			cfg := &logger.Config{
				Level:  "debug",
				Format: "console",
			}

			l, logErr := logger.New(cfg)
			if logErr == nil {
				l.Error("command failed", zap.Error(err))
				_ = l.Sync()
			} else {
				fmt.Println(err)
			}
		}
		os.Exit(1)
	}
}

// newResolver builds the settings resolver from the -D definitions.
func newResolver() (*settings.Resolver, error) {
	overrides, err := settings.ParseDefines(defines)
	if err != nil {
		return nil, err
	}
	return settings.New(overrides), nil
}

func init() {
	RootCmd.PersistentFlags().StringArrayVarP(&defines, "define", "D", nil, "define a setting as KEY=VALUE (repeatable, wins over the environment)")
}
