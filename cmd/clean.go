package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cleanRaw bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove refined output files",
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := selectSpecs()
		if err != nil {
			return err
		}

		output := viper.GetString("pipeline.output")
		fmt.Printf("🧹 Cleaning refined files in %s\n", output)

		removed := 0
		for _, spec := range specs {
			paths := []string{filepath.Join(output, spec.OutputFile)}
			if cleanRaw {
				paths = append(paths, filepath.Join(viper.GetString("pipeline.input"), spec.RawFile))
			}
			for _, path := range paths {
				err := os.Remove(path)
				if os.IsNotExist(err) {
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to remove %s: %w", path, err)
				}
				logger.Infow("removed file", "path", path)
				removed++
			}
		}

		fmt.Printf("Removed %d files\n", removed)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific datasets to clean (comma-separated)")
	cleanCmd.Flags().BoolVar(&cleanRaw, "raw", false, "Also remove raw files from the input directory")
}
