package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smartstock/models"
	"smartstock/seed"
	"smartstock/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Inspect the seed dataset",
}

var seedDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active seed dataset as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := seed.Load(cfg.App.SeedFile)
		if err != nil {
			return err
		}
		out, err := seed.Marshal(d)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var synthFlags struct {
	id         string
	name       string
	date       string
	impact     string
	multiplier float64
	categories []string
}

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Print the recommendations an event would generate",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if synthFlags.date != "" {
			var err error
			date, err = time.Parse(time.DateOnly, synthFlags.date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
		}
		e := models.Event{
			ID:                        synthFlags.id,
			Name:                      synthFlags.name,
			Date:                      date,
			Impact:                    models.Priority(synthFlags.impact),
			AffectedCategories:        synthFlags.categories,
			EstimatedDemandMultiplier: synthFlags.multiplier,
		}
		recs := store.SynthesizeRecommendations(e, time.Now())

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	},
}

func init() {
	seedCmd.AddCommand(seedDumpCmd)

	f := synthCmd.Flags()
	f.StringVar(&synthFlags.id, "id", "cli", "event id used in generated recommendation ids")
	f.StringVar(&synthFlags.name, "name", "Local Event", "event name")
	f.StringVar(&synthFlags.date, "date", "", "event date (YYYY-MM-DD), defaults to today")
	f.StringVar(&synthFlags.impact, "impact", string(models.PriorityMedium), "event impact: HIGH, MEDIUM or LOW")
	f.Float64Var(&synthFlags.multiplier, "multiplier", 1.5, "estimated demand multiplier")
	f.StringSliceVar(&synthFlags.categories, "categories", nil, "affected categories, comma separated")
	_ = synthCmd.MarkFlagRequired("categories")
}
