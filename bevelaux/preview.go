package bevelaux

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/bevel/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	ConeColor  = color.RGBA{R: 0x40, G: 0xa0, B: 0xa0, A: 0xff}
	ToothColor = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
)

// Layer is a named set of points drawn in a single color.
type Layer struct {
	Name   string
	Points []r3.Vec
	Color  color.Color
}

// View is a perspective camera.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye  r3.Vec
	Fovy float64 // vertical field of view in degrees
	Near float64
	Far  float64
}

// PreviewConfig controls preview image rendering.
type PreviewConfig struct {
	Width, Height int // output width and height in pixels
	// Scale is the supersampling factor. Images are drawn Scale times
	// larger and downsampled for antialiasing.
	Scale int
	Title string
	// View is the camera. The zero value looks at the points' bounding box
	// center from above and to the side.
	View View
}

// DefaultPreview returns an 800x800 preview titled like the tooth surface.
func DefaultPreview() PreviewConfig {
	return PreviewConfig{
		Width:  800,
		Height: 800,
		Scale:  2,
		Title:  "Spherical involute helicoid",
	}
}

// CreatePNG renders the layers to a new PNG file at path.
func CreatePNG(path string, cfg PreviewConfig, layers ...Layer) error {
	img, err := previewImage(cfg, layers)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

// WritePNG renders the layers as a PNG image to w.
func WritePNG(w io.Writer, cfg PreviewConfig, layers ...Layer) error {
	img, err := previewImage(cfg, layers)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// defaultView frames the bounding box from a diagonal viewpoint with z up.
func defaultView(bb d3.Box) View {
	diag := bb.Diagonal()
	if diag == 0 {
		diag = 1
	}
	center := bb.Center()
	return View{
		LookAt: center,
		Up:     r3.Vec{Z: 1},
		Eye:    r3.Add(center, r3.Scale(diag, r3.Vec{X: 1.2, Y: 1.2, Z: 0.9})),
		Fovy:   30,
		Near:   0.1 * diag,
		Far:    10 * diag,
	}
}

func previewImage(cfg PreviewConfig, layers []Layer) (image.Image, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("preview size must be positive")
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	var all d3.Set
	for _, l := range layers {
		all = append(all, l.Points...)
	}
	if len(all) == 0 {
		return nil, errors.New("no points to preview")
	}
	view := cfg.View
	if view == (View{}) {
		view = defaultView(all.Bounds())
	}
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)          // camera position
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		aspect = float64(cfg.Width) / float64(cfg.Height)
	)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(view.Fovy, aspect, view.Near, view.Far)

	p := plot.New()
	p.Title.Text = cfg.Title
	p.HideAxes()
	for _, l := range layers {
		if len(l.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, 0, len(l.Points))
		for _, pt := range l.Points {
			clip := matrix.MulPositionW(fauxgl.V(pt.X, pt.Y, pt.Z))
			if clip.W <= 0 {
				continue // behind camera.
			}
			xys = append(xys, plotter.XY{X: clip.X / clip.W, Y: clip.Y / clip.W})
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = l.Color
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		if l.Name != "" {
			p.Legend.Add(l.Name, sc)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(cfg.Width), vg.Length(cfg.Height)),
		vgimg.UseDPI(vgimg.DefaultDPI*cfg.Scale),
	)
	p.Draw(draw.New(c))
	var img image.Image = c.Image()
	if sz := img.Bounds().Size(); sz.X != cfg.Width || sz.Y != cfg.Height {
		// downsample image for antialiasing
		img = resize.Resize(uint(cfg.Width), uint(cfg.Height), img, resize.Bilinear)
	}
	return img, nil
}
