package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackcoderx/oasify/pkg/core"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	configReadErr error
	rootCmd       = &cobra.Command{
		Use:   "oasify",
		Short: "oasify - turn Insomnia exports into OpenAPI 3 documents",
		Long: `oasify converts an Insomnia collection export into an OpenAPI 3.0 document.
Convert from the command line, browse the result in your terminal, or run the
small upload/download web service.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .oasify/config.json)")
}

func initConfig() {
	// Load .env file if it exists (optional, warn if malformed)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
	}

	core.SetDefaults(viper.GetViper())
	core.BindEnv(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(core.FolderName)
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configReadErr = err
		}
	}
}

// loadConfig returns the effective configuration. An explicit --config that
// cannot be read is an error; a missing default config is not.
func loadConfig() (core.Config, error) {
	if configReadErr != nil {
		return core.Config{}, fmt.Errorf("failed to read config: %w", configReadErr)
	}
	return core.Load(viper.GetViper())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
