// Package bevelaux wires bevel point generation to files: configuration
// loading, CSV/PLY output and preview images.
package bevelaux

import (
	"fmt"
	"time"

	"github.com/soypat/bevel/render"
)

// Render is an auxiliary function to run a full generation from a Config:
// the base cone and tooth surface CSV files plus the optional PLY point
// cloud and preview image. Existing files are overwritten.
// The configuration is validated before any file is created.
func Render(cfg Config) (err error) {
	log := func(args ...any) {
		if !cfg.Silent {
			fmt.Println(args...)
		}
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	cone, err := cfg.Cone()
	if err != nil {
		return err
	}
	surface, grid, err := cfg.Surface()
	if err != nil {
		return err
	}

	watch := stopwatch()
	cr, err := render.NewConeRenderer(cone, cfg.ConeGenDivisions, cfg.ConeAngDivisions)
	if err != nil {
		return err
	}
	if err = render.CreateCSV(cfg.BaseCone, cr, render.ConePrecision); err != nil {
		return fmt.Errorf("writing base cone: %w", err)
	}
	log("wrote base cone", cfg.BaseCone, "in", watch())

	watch = stopwatch()
	points, err := render.SampleSurface(surface, grid, cfg.Workers)
	if err != nil {
		return fmt.Errorf("sampling %s: %w", cfg.Variant, err)
	}
	log("sampled", len(points), cfg.Variant, "points in", watch())
	if err = render.CreateCSV(cfg.ToothSurface, render.SliceReader(points), render.ToothPrecision); err != nil {
		return fmt.Errorf("writing tooth surface: %w", err)
	}
	log("wrote tooth surface", cfg.ToothSurface)

	if cfg.PLY != "" {
		if err = render.CreatePLY(cfg.PLY, render.SliceReader(points)); err != nil {
			return fmt.Errorf("writing PLY: %w", err)
		}
		log("wrote point cloud", cfg.PLY)
	}
	if cfg.Preview != "" {
		watch = stopwatch()
		pcfg := DefaultPreview()
		pcfg.Title = "Spherical involute " + cfg.Variant
		err = CreatePNG(cfg.Preview, pcfg,
			Layer{Name: "Base cone", Points: cone.Sample(cfg.ConeGenDivisions, cfg.ConeAngDivisions), Color: ConeColor},
			Layer{Name: "Tooth surface", Points: points, Color: ToothColor},
		)
		if err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		log("wrote preview", cfg.Preview, "in", watch())
	}
	return nil
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
