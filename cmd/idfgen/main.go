// idfgen is the thin CLI wrapper around the synthesis core. The core
// itself defines no CLI or network surface; this command is the
// higher-level layer the design allows for operators who want to
// generate an IDF from a shell.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"idfgen/config"
	"idfgen/defaults"
	"idfgen/metrics"
	"idfgen/model"
	"idfgen/params"
	"idfgen/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		buildingType string
		stories      int
		perStoryArea float64
		totalArea    float64
		yearBuilt    int
		leedLevel    string
		climateZone  string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "idfgen",
		Short: "Generate an EnergyPlus IDF model from building parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := cfg.CreateLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			var collector *metrics.Collector
			if cfg.Metrics.Enabled {
				collector = metrics.NewCollector()
			}

			lib := defaults.NewLibrary(cfg.Defaults.LibraryVersion)
			gen := pipeline.New(cfg, lib, logger, collector)

			user := params.UserInput{}
			if buildingType != "" {
				bt := model.BuildingType(buildingType)
				user.BuildingType = &bt
			}
			if stories > 0 {
				user.Stories = &stories
			}
			if perStoryArea > 0 {
				user.FloorAreaPerStoryM2 = &perStoryArea
			}
			if totalArea > 0 {
				user.TotalFloorAreaM2 = &totalArea
			}
			if yearBuilt > 0 {
				user.YearBuilt = &yearBuilt
			}
			if leedLevel != "" {
				ll := model.LEEDLevel(leedLevel)
				user.LEEDLevel = &ll
			}

			var site *model.Site
			if climateZone != "" {
				site = &model.Site{ClimateZone: model.ClimateZone(climateZone)}
			}

			out, err := gen.Run(context.Background(), user, site)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				fmt.Print(out.IDFText)
			} else if err := os.WriteFile(outPath, []byte(out.IDFText), 0o644); err != nil {
				return err
			}

			logger.Info("wrote model",
				zap.String("path", outPath),
				zap.Int("zones", out.Report.Stats.NZones),
				zap.Int("warnings", len(out.Report.Warnings)),
				zap.String("sha256", out.SHA256),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&buildingType, "building-type", "Office", "building type (Office, Retail, School, ...)")
	cmd.Flags().IntVar(&stories, "stories", 0, "number of stories")
	cmd.Flags().Float64Var(&perStoryArea, "per-story-area", 0, "floor area per story, m2")
	cmd.Flags().Float64Var(&totalArea, "total-area", 0, "total floor area, m2")
	cmd.Flags().IntVar(&yearBuilt, "year-built", 0, "construction year")
	cmd.Flags().StringVar(&leedLevel, "leed", "", "LEED level (Certified, Silver, Gold, Platinum)")
	cmd.Flags().StringVar(&climateZone, "climate-zone", "", "ASHRAE climate zone (C1..C8)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path, - for stdout")

	return cmd
}
