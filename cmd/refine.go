package cmd

import (
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"csv-refine/internal/dataset"
	"csv-refine/internal/engine"
)

var (
	tables   []string
	dryRun   bool
	validate bool
	failFast bool
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine the raw dataset files into typed output files",
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := selectSpecs()
		if err != nil {
			return err
		}

		input := viper.GetString("pipeline.input")
		output := viper.GetString("pipeline.output")

		// Dry Run
		if dryRun {
			fmt.Printf("🔍 Refinement Plan (%s into %s):\n", input, output)
			for i, s := range specs {
				derived := lo.Map(s.Derived, func(d dataset.Derivation, _ int) string {
					return d.Name
				})
				fmt.Printf("[%02d] %-22s %s (%d columns, derived: %v)\n",
					i+1, s.Name, s.RawFile, len(s.Columns), derived)
			}
			return nil
		}

		fmt.Printf("🧹 Refining %d datasets from %s into %s\n", len(specs), input, output)
		logger.Infow("starting refinement", "datasets", len(specs), "input", input, "output", output)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(specs)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Refining: "
		})

		results := engine.Run(specs, engine.Options{
			InputDir:  input,
			OutputDir: output,
			Validate:  validate,
			FailFast:  failFast,
			Log:       logger,
			OnProgress: func() {
				bar.Incr()
			},
		})

		uiprogress.Stop()

		elapsed := time.Since(start)

		fmt.Println("\n📊 Summary Report:")
		totalRows := 0
		failed := 0
		for i, r := range results {
			icon := "✓"
			if r.Status != "OK" {
				icon = "!"
				failed++
			}
			fmt.Printf("[%s] [%02d/%02d] %-22s : %d rows, %d columns -> %s - %s\n",
				icon, i+1, len(results), r.Dataset, r.Rows, r.Columns, r.Output, r.Status)
			if r.ErrMsg != "" {
				fmt.Printf("    └ Error: %s\n", r.ErrMsg)
			}
			totalRows += r.Rows
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total Rows Refined: %d\n", totalRows)
		logger.Infow("refinement done", "elapsed", elapsed.String())

		if failed > 0 {
			return fmt.Errorf("%d of %d datasets failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(refineCmd)

	// CLI Flags
	refineCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific datasets to refine (comma-separated)")
	refineCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the refinement plan without writing files")
	refineCmd.Flags().BoolVar(&validate, "validate", false, "Run declared validation checks after transforming")
	refineCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failing dataset")
}
