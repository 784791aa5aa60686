package bevelaux

import (
	"errors"
	"strings"
	"testing"

	"github.com/soypat/bevel"
)

const helicoidYAML = `
variant: helicoid
phi: 60
generatrix: 20
beta: 20
sweepCount: 14
sweepStep: 1
thetaCount: 20
thetaStep: 0.1
toothSurface: tooth.csv
baseCone: cone.csv
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(helicoidYAML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != VariantHelicoid || cfg.Generatrix != 20 || cfg.Beta != 20 {
		t.Errorf("unexpected config %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.ConeGenDivisions != 10 || cfg.ConeAngDivisions != 50 || cfg.Workers != 1 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
	surface, grid, err := cfg.Surface()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := surface.(bevel.Helicoid); !ok {
		t.Errorf("got surface %T, want bevel.Helicoid", surface)
	}
	if grid.Len() != 14*20 {
		t.Errorf("got %d grid points", grid.Len())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		yaml   string
		domain bool
	}{
		{name: "unknown field", yaml: "phi: 60\ncolour: red\n"},
		{name: "bad variant", yaml: "variant: spur\n"},
		{name: "flat cone", yaml: "phi: 90\n"},
		{name: "no output", yaml: "toothSurface: \"\"\n"},
		{name: "negative count", yaml: "thetaCount: -3\n"},
		{name: "zero cone divisions", yaml: "coneAngDivisions: 0\n"},
		{name: "steep helix", yaml: "variant: helicoid\nbeta: 90\n"},
		// Widths 0..14 reach past 20*(1-sin 20°) ≈ 13.159.
		{name: "width past bound", yaml: strings.Replace(helicoidYAML, "sweepCount: 14", "sweepCount: 15", 1), domain: true},
	} {
		_, err := LoadConfig(strings.NewReader(test.yaml))
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if got := errors.Is(err, bevel.ErrDomain); got != test.domain {
			t.Errorf("%s: domain error = %v, want %v (%v)", test.name, got, test.domain, err)
		}
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	_, grid, err := cfg.Surface()
	if err != nil {
		t.Fatal(err)
	}
	if grid.Sweep.Value(0) != 100 || grid.Len() != 400 {
		t.Errorf("unexpected default grid %+v", grid)
	}
}
