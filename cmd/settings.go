package cmd

import (
	"fmt"
	"strings"

	"webapp-standalone/core/config"

	"github.com/spf13/cobra"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the resolved settings",
	Long:  `Prints every setting with the value the server would start with, without starting it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		// Loads .env as a side effect, so Describe sees the same values as start
		_, loadErr := config.LoadConfig(".", resolver)

		out := cmd.OutOrStdout()
		for _, s := range config.Describe(resolver) {
			value := s.Value
			if isSecret(s.Name) && value != "" {
				value = "****"
			}
			source := "default"
			if s.Set {
				source = "set"
			}
			fmt.Fprintf(out, "%s=%s (%s)\n", s.Name, value, source)
		}
		if loadErr != nil {
			return fmt.Errorf("configuration is not valid: %w", loadErr)
		}
		return nil
	},
}

func isSecret(name string) bool {
	return strings.HasSuffix(name, "_SECRET_KEY") || strings.HasSuffix(name, "_API_KEY")
}

func init() {
	RootCmd.AddCommand(settingsCmd)
}
