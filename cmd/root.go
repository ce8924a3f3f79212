package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	dsn     string
)

var RootCmd = &cobra.Command{
	Use:   "tptgen",
	Short: "A Teradata TPT export script generator",
	Long: `
  _____ ____ _____ ____ _____ _   _
 |_   _|  _ \_   _/ ___| ____| \ | |
   | | | |_) || || |  _|  _| |  \| |
   | | |  __/ | || |_| | |___| |\  |
   |_| |_|    |_| \____|_____|_| \_|

TPTGEN - Teradata Parallel Transporter Export Script Generator
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tptgen.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "ODBC connection string (overrides teradata.* connection settings)")

	// Bind dsn flag to viper
	viper.BindPFlag("teradata.dsn", RootCmd.PersistentFlags().Lookup("dsn"))

	// Defaults (fallback if no config/flag)
	viper.SetDefault("teradata.driver", "odbc")
	viper.SetDefault("tpt_settings.tpt_restart_wait_period", "600")
	viper.SetDefault("tpt_settings.tpt_output_delimiter", "|")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("tptgen")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
