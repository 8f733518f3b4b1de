package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"csv-refine/internal/dataset"
)

type SinkConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveSinkConfig returns the currently active sink configuration.
func GetActiveSinkConfig() (*SinkConfig, error) {
	var configs []SinkConfig

	if err := viper.UnmarshalKey("sinks", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse sinks config: %w", err)
	}

	var activeConfig *SinkConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active sink found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active sinks found (only one can be active)")
	}

	return activeConfig, nil
}

// selectSpecs resolves which variants to process:
// 1. Check CLI flag --tables
// 2. If empty, check config settings.tables
// 3. If both empty, process all datasets.
func selectSpecs() ([]dataset.Spec, error) {
	names := tables
	if len(names) == 0 {
		names = viper.GetStringSlice("settings.tables")
	}
	if len(names) == 0 {
		return dataset.All(), nil
	}

	var specs []dataset.Spec
	for _, name := range names {
		spec, ok := dataset.Get(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			known := lo.Map(dataset.All(), func(s dataset.Spec, _ int) string {
				return s.Name
			})
			return nil, fmt.Errorf("unknown dataset %q (known: %s)", name, strings.Join(known, ", "))
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
