package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noodlebox/movement/internal/log"
)

var (
	cfgFile string
	format  string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "movement",
	Short: "Watch arithmetic from the command line",
	Long: `movement builds a watch from a start time, applies deltas given as
seconds or time spans, and prints the resulting end time with a day
rollover suffix.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.movement/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "display format: 12h or 24h (default from config or 24h)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".movement"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("movement")
	viper.AutomaticEnv()
	viper.BindEnv("format", "MOVEMENT_FORMAT")

	// The config file is optional; flags win over config and environment.
	_ = viper.ReadInConfig()
	if format == "" {
		format = viper.GetString("format")
	}
	if format == "" {
		format = "24h"
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	log.Configure(log.Config{Level: level})
}

// Meridiem reports whether 12-hour display was selected.
func Meridiem() bool {
	return format == "12h"
}
