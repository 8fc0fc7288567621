package pathplot

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

var _ Canvas = (*GGCanvas)(nil)

// GGCanvas is an RGB canvas backed by gg software renderer.
// Lines are 1px wide and anti-aliased; pixel centers sit on integer coordinates.
type GGCanvas struct {
	width  int
	height int
	dc     *gg.Context
}

func NewGGCanvas(width, height int) (*GGCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("Canvas size must be positive, got %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	dc.ClearWithColor(gg.RGB(0, 0, 0))
	return &GGCanvas{
		width:  width,
		height: height,
		dc:     dc,
	}, nil
}

// Size returns canvas dimensions
func (canvas *GGCanvas) Size() (int, int) {
	return canvas.width, canvas.height
}

// Order returns OrderRGB
func (canvas *GGCanvas) Order() ChannelOrder {
	return OrderRGB
}

// Context exposes underlying drawing context
func (canvas *GGCanvas) Context() *gg.Context {
	return canvas.dc
}

func (canvas *GGCanvas) setColor(c Color) {
	canvas.dc.SetColor(FromNative(c, OrderRGB).NRGBA())
}

// Clear fills the whole canvas with c
func (canvas *GGCanvas) Clear(c Color) error {
	canvas.dc.ClearWithColor(gg.FromColor(FromNative(c, OrderRGB).NRGBA()))
	return nil
}

// DrawLine strokes 1px line between pixel centers
func (canvas *GGCanvas) DrawLine(p1, p2 PixelPoint, c Color) error {
	canvas.setColor(c)
	canvas.dc.DrawLine(float64(p1.X)+0.5, float64(p1.Y)+0.5, float64(p2.X)+0.5, float64(p2.Y)+0.5)
	if err := canvas.dc.Stroke(); err != nil {
		return errors.Wrap(err, "Can't stroke line")
	}
	return nil
}

// FillPolygon fills closed polygon through pixel centers
func (canvas *GGCanvas) FillPolygon(pts []PixelPoint, c Color) error {
	if len(pts) < 3 {
		return nil
	}
	canvas.setColor(c)
	canvas.dc.MoveTo(float64(pts[0].X)+0.5, float64(pts[0].Y)+0.5)
	for _, pt := range pts[1:] {
		canvas.dc.LineTo(float64(pt.X)+0.5, float64(pt.Y)+0.5)
	}
	canvas.dc.ClosePath()
	if err := canvas.dc.FillPreserve(); err != nil {
		canvas.dc.ClearPath()
		return errors.Wrap(err, "Can't fill polygon")
	}
	// Outline too, so thin icons stay visible
	if err := canvas.dc.Stroke(); err != nil {
		return errors.Wrap(err, "Can't stroke polygon")
	}
	return nil
}

// CopyFrom replaces canvas content with src pixels
func (canvas *GGCanvas) CopyFrom(src Canvas) error {
	w, h := src.Size()
	if w != canvas.width || h != canvas.height {
		return errors.Errorf("Canvas size mismatch: %dx%d vs %dx%d", w, h, canvas.width, canvas.height)
	}
	dc := gg.NewContextForImage(src.Image())
	dc.SetLineWidth(1)
	if err := canvas.dc.Close(); err != nil {
		return errors.Wrap(err, "Can't release previous context")
	}
	canvas.dc = dc
	return nil
}

// Image returns canvas snapshot
func (canvas *GGCanvas) Image() image.Image {
	return canvas.dc.Image()
}
