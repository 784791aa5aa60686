package bevelaux

import (
	"bytes"
	"image"
	_ "image/png"
	"testing"

	"github.com/soypat/bevel"
	"github.com/soypat/bevel/render"
	"gonum.org/v1/plot/cmpimg"
)

// imgDelta a normalized imgDelta parameter to describe how close the matching
// should be performed (imgDelta=0: perfect match, imgDelta=1, loose match)
const imgDelta = 0

func helicoidLayers(t testing.TB) []Layer {
	cone, err := bevel.NewCone(bevel.DtoR(60), 20)
	if err != nil {
		t.Fatal(err)
	}
	h, err := bevel.NewHelicoid(cone, bevel.DtoR(20))
	if err != nil {
		t.Fatal(err)
	}
	pts, err := render.SampleSurface(h, bevel.HelicoidGrid(14, 0.9, 20, 0.1), 2)
	if err != nil {
		t.Fatal(err)
	}
	return []Layer{
		{Name: "Base cone", Points: cone.Sample(10, 50), Color: ConeColor},
		{Name: "Spherical involute helicoid", Points: pts, Color: ToothColor},
	}
}

func TestWritePNGDeterministic(t *testing.T) {
	layers := helicoidLayers(t)
	cfg := DefaultPreview()
	cfg.Width, cfg.Height = 320, 240
	var b1, b2 bytes.Buffer
	if err := WritePNG(&b1, cfg, layers...); err != nil {
		t.Fatal(err)
	}
	if err := WritePNG(&b2, cfg, layers...); err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1.Bytes(), b2.Bytes(), imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("preview rendering is not deterministic")
	}
	imcfg, _, err := image.DecodeConfig(&b1)
	if err != nil {
		t.Fatal(err)
	}
	if imcfg.Width != 320 || imcfg.Height != 240 {
		t.Errorf("got %dx%d image, want 320x240", imcfg.Width, imcfg.Height)
	}
}

func TestWritePNGErrors(t *testing.T) {
	var b bytes.Buffer
	if err := WritePNG(&b, DefaultPreview()); err == nil {
		t.Error("expected error with no layers")
	}
	cfg := DefaultPreview()
	cfg.Width = 0
	if err := WritePNG(&b, cfg, helicoidLayers(t)...); err == nil {
		t.Error("expected error for zero width")
	}
}
