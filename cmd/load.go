package cmd

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"csv-refine/internal/frame"
	"csv-refine/internal/sink"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load refined files into the active SQL sink",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetActiveSinkConfig()
		if err != nil {
			return err
		}

		fmt.Printf("🧹 Connected to %s (%s)\n", config.Name, config.Driver)

		db, err := sql.Open(config.Driver, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		d := sink.ForDriver(config.Driver)
		logger.Infow("using dialect", "driver", config.Driver)

		specs, err := selectSpecs()
		if err != nil {
			return err
		}

		// Load consumes refine's output; reload the refined files
		// against the refined schema.
		output := viper.GetString("pipeline.output")
		var items []sink.Item
		for _, spec := range specs {
			f, err := frame.Load(filepath.Join(output, spec.OutputFile), spec.RefinedColumns(), nil)
			if err != nil {
				return fmt.Errorf("reading refined file for %s (run refine first): %w", spec.Name, err)
			}
			items = append(items, sink.Item{Spec: spec, Frame: f})
		}

		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(items)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Loading:  "
		})

		results, err := sink.Load(db, d, items, logger, func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		fmt.Println("\n📊 Summary Report:")
		total := 0
		failed := 0
		for i, r := range results {
			icon := "✓"
			if r.Status != "OK" {
				icon = "!"
				failed++
			}
			fmt.Printf("[%s] [%02d/%02d] %-32s : %d rows (Target: %d) - %s\n",
				icon, i+1, len(results), r.Table, r.Actual, r.Target, r.Status)
			if r.ErrMsg != "" {
				fmt.Printf("    └ Error: %s\n", r.ErrMsg)
			}
			total += r.Actual
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total Rows Loaded: %d\n", total)
		logger.Infow("load done", "elapsed", time.Since(start).String())

		if failed > 0 {
			return fmt.Errorf("%d of %d tables failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific datasets to load (comma-separated)")
}
