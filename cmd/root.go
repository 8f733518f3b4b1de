package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"csv-refine/internal/logging"
)

var (
	cfgFile   string
	inputDir  string
	outputDir string
	logger    *zap.SugaredLogger
)

var RootCmd = &cobra.Command{
	Use:   "csv-refine",
	Short: "A batch cleaning pipeline for the Olist e-commerce dataset",
	Long: `
  ____  ____  __     __        ____   _____  _____  ___  _   _  _____
 / ___|/ ___| \ \   / / _____ |  _ \ | ____||  ___||_ _|| \ | || ____|
| |    \___ \  \ \ / / |_____|| |_) ||  _|  | |_    | | |  \| ||  _|
| |___  ___) |  \ V /         |  _ < | |___ |  _|   | | | |\  || |___
 \____||____/    \_/          |_| \_\|_____||_|    |___||_| \_||_____|

CSV REFINE 🧹 - Raw Dataset Cleaner & Refiner
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(viper.GetString("settings.log_level"))
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
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
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./csv-refine.yaml)")
	RootCmd.PersistentFlags().StringVar(&inputDir, "input", "", "directory holding the raw dataset files")
	RootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "directory the refined files are written to")

	// Bind directory flags to viper (Flag > Config > Default)
	viper.BindPFlag("pipeline.input", RootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("pipeline.output", RootCmd.PersistentFlags().Lookup("output"))

	// Set defaults for Viper (fallback if no config/flag)
	viper.SetDefault("pipeline.input", "data/raw")
	viper.SetDefault("pipeline.output", "data/refined")
	viper.SetDefault("settings.log_level", "info")
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

		viper.SetConfigName("csv-refine")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CSV_REFINE")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
