package bevelaux

import (
	"errors"
	"fmt"
	"io"

	"github.com/soypat/bevel"
	"gopkg.in/yaml.v2"
)

const (
	VariantInvolute = "involute"
	VariantHelicoid = "helicoid"
)

// Config describes a complete generation run. Angles are in degrees
// except ThetaStep which is in radians like the rolling angle it steps.
type Config struct {
	Variant    string  `yaml:"variant"`
	Phi        float64 `yaml:"phi"`        // base cone angle [deg]
	Generatrix float64 `yaml:"generatrix"` // base cone slant length
	Beta       float64 `yaml:"beta"`       // helix angle [deg], helicoid only

	// SweepStep is a fraction of the generatrix for the involute variant
	// and a width offset for the helicoid variant.
	SweepCount int     `yaml:"sweepCount"`
	SweepStep  float64 `yaml:"sweepStep"`
	ThetaCount int     `yaml:"thetaCount"`
	ThetaStep  float64 `yaml:"thetaStep"`

	ConeGenDivisions int `yaml:"coneGenDivisions"`
	ConeAngDivisions int `yaml:"coneAngDivisions"`

	// Output paths. PLY and Preview are optional.
	ToothSurface string `yaml:"toothSurface"`
	BaseCone     string `yaml:"baseCone"`
	PLY          string `yaml:"ply"`
	Preview      string `yaml:"preview"`

	Workers int  `yaml:"workers"`
	Silent  bool `yaml:"silent"`
}

// DefaultConfig returns the plain involute run: 60° base cone of
// generatrix 200 sampled 20x20 from half its generatrix outwards.
func DefaultConfig() Config {
	return Config{
		Variant:          VariantInvolute,
		Phi:              60,
		Generatrix:       200,
		SweepCount:       20,
		SweepStep:        0.025,
		ThetaCount:       20,
		ThetaStep:        0.1,
		ConeGenDivisions: 10,
		ConeAngDivisions: 50,
		ToothSurface:     "tooth_surface.csv",
		BaseCone:         "base_cone_surface.csv",
		Workers:          1,
	}
}

// LoadConfig decodes a YAML configuration over DefaultConfig.
// Unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err = yaml.UnmarshalStrict(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration without generating any points.
// Helicoid width offsets beyond the twist correction domain are reported
// as a *bevel.DomainError.
func (cfg Config) Validate() error {
	if cfg.Variant != VariantInvolute && cfg.Variant != VariantHelicoid {
		return fmt.Errorf("unknown variant %q", cfg.Variant)
	}
	if cfg.ToothSurface == "" || cfg.BaseCone == "" {
		return errors.New("tooth surface and base cone output paths required")
	}
	if cfg.ConeGenDivisions <= 0 || cfg.ConeAngDivisions <= 0 {
		return errors.New("cone divisions must be positive")
	}
	surface, grid, err := cfg.Surface()
	if err != nil {
		return err
	}
	if err = grid.Validate(); err != nil {
		return err
	}
	if h, ok := surface.(bevel.Helicoid); ok && grid.Sweep.Count > 0 {
		// Width offsets are monotonic so checking both ends covers the sweep.
		for _, b := range [2]float64{grid.Sweep.Value(0), grid.Sweep.Value(grid.Sweep.Count - 1)} {
			if _, err = h.ThetaOffset(b); err != nil {
				return err
			}
		}
	}
	return nil
}

// Cone returns the configured base cone.
func (cfg Config) Cone() (bevel.Cone, error) {
	return bevel.NewCone(bevel.DtoR(cfg.Phi), cfg.Generatrix)
}

// Surface returns the configured tooth surface and its sampling grid.
func (cfg Config) Surface() (bevel.Surface, bevel.Grid, error) {
	cone, err := cfg.Cone()
	if err != nil {
		return nil, bevel.Grid{}, err
	}
	switch cfg.Variant {
	case VariantInvolute:
		grid := bevel.PlainGrid(cone, cfg.SweepCount, cfg.SweepStep, cfg.ThetaCount, cfg.ThetaStep)
		return bevel.Involute{Cone: cone}, grid, nil
	case VariantHelicoid:
		h, err := bevel.NewHelicoid(cone, bevel.DtoR(cfg.Beta))
		if err != nil {
			return nil, bevel.Grid{}, err
		}
		return h, bevel.HelicoidGrid(cfg.SweepCount, cfg.SweepStep, cfg.ThetaCount, cfg.ThetaStep), nil
	}
	return nil, bevel.Grid{}, fmt.Errorf("unknown variant %q", cfg.Variant)
}
