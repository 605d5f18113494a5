package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rpgo/synthfeed/internal/config"
	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "synthfeed",
		Short: "Synthetic price feed dashboard",
		Long: `synthfeed generates reproducible synthetic price feeds from integer seeds
and serves them as a two-chart dashboard that can be regenerated on demand.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file (defaults when empty)")
	rootCmd.PersistentFlags().String("env-file", "", "dotenv file to load before reading SYNTHFEED_* variables (default .env)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(),
		newGenerateCmd(),
		newSeedsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// loadConfig resolves the configuration named by the global flags.
func loadConfig(cmd *cobra.Command) (*domain.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	return config.NewInputParser().Load(path, envFiles...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "synthfeed version %s\n", version)
			}
		},
	}
}
