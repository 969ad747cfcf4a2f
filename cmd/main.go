package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "controlling_microwave/docs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// @title                       Microwave Oven API
// @version                     1.0
// @description                 Drives a simulated microwave oven and runs the oven conformance suite.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

const envPrefix = "MICROWAVE"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "microwave",
		Short: "Microwave oven controller and conformance runner",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(configPath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default configs/config.yml)")

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newConformanceCommand())
	return cmd
}

func setDefaults() {
	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "app.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("auth.token_ttl", time.Hour)
	viper.SetDefault("tick.interval", time.Second)
	viper.SetDefault("conformance.depth", 2)
}

// loadConfig reads configs/config.yml (or path) and overlays MICROWAVE_* env vars.
// A missing default config file is not an error.
func loadConfig(path string) error {
	setDefaults()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
		return nil
	}

	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
