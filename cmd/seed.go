package cmd

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"csv-refine/internal/engine"
)

var (
	count   int
	seedVal int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a synthetic raw dataset for trying the pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := selectSpecs()
		if err != nil {
			return err
		}

		// Fetch count from Viper (Flag > Config > Default)
		targetCount := viper.GetInt("settings.default_count")
		if count > 0 { // Flag override
			targetCount = count
		}

		input := viper.GetString("pipeline.input")
		fmt.Printf("🧹 Seeding %d raw files into %s (count=%d)\n", len(specs), input, targetCount)

		uiprogress.Start()
		bar := uiprogress.AddBar(len(specs)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Seeding:  "
		})

		seeder := engine.NewSeeder(seedVal)
		err = seeder.Seed(input, specs, targetCount, logger, func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		fmt.Printf("Seed Done! %d files written to %s\n", len(specs), input)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	// CLI Flags
	seedCmd.Flags().IntVar(&count, "count", 0, "Rows to generate per parent table (overrides config)")
	seedCmd.Flags().Int64Var(&seedVal, "seed", 0, "Random seed for reproducible data (0 = from the clock)")
	seedCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific datasets to seed (comma-separated)")

	viper.BindPFlag("settings.default_count", seedCmd.Flags().Lookup("count"))
	viper.SetDefault("settings.default_count", 100)
}
