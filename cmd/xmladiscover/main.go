package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kent-id/xmladiscover"
	"github.com/kent-id/xmladiscover/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	modelFile  string
	version    = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "xmladiscover",
	Short:         "Answer XMLA discover requests against a cube model",
	Long:          "Runs XMLA schema rowset requests (DISCOVER_*, DBSCHEMA_*, MDSCHEMA_*) against a YAML cube model.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&modelFile, "model", "", "Path to the cube model, overrides the config file")

	setupCommands()
}

// loadConfig reads the config file when one is given and applies the flags over it.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if modelFile != "" {
		cfg.Model = modelFile
	}

	level, err := xmladiscover.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	xmladiscover.SetLogLevel(level)
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
