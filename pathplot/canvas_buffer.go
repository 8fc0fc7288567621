package pathplot

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"
)

var _ Canvas = (*BufferCanvas)(nil)

// BufferCanvas is a packed 3-channel canvas in BGR order, row-major, zero-initialized.
// Lines are 8-connected and not anti-aliased, polygons are filled together with their outline.
type BufferCanvas struct {
	width  int
	height int
	data   []uint8
}

func NewBufferCanvas(width, height int) (*BufferCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("Canvas size must be positive, got %dx%d", width, height)
	}
	return &BufferCanvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}, nil
}

// Size returns canvas dimensions
func (canvas *BufferCanvas) Size() (int, int) {
	return canvas.width, canvas.height
}

// Order returns OrderBGR
func (canvas *BufferCanvas) Order() ChannelOrder {
	return OrderBGR
}

// Data returns underlying BGR buffer. Be careful: this is not copy
func (canvas *BufferCanvas) Data() []uint8 {
	return canvas.data
}

// Pixel returns BGR color at (x, y). Second value is false outside the canvas
func (canvas *BufferCanvas) Pixel(x, y int) (Color, bool) {
	if !canvas.inside(x, y) {
		return Color{}, false
	}
	i := (y*canvas.width + x) * 3
	return Color{canvas.data[i], canvas.data[i+1], canvas.data[i+2]}, true
}

func (canvas *BufferCanvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < canvas.width && y < canvas.height
}

func (canvas *BufferCanvas) set(x, y int, c Color) {
	if !canvas.inside(x, y) {
		return
	}
	i := (y*canvas.width + x) * 3
	canvas.data[i+0] = c[0]
	canvas.data[i+1] = c[1]
	canvas.data[i+2] = c[2]
}

// Clear fills the whole canvas with c
func (canvas *BufferCanvas) Clear(c Color) error {
	for i := 0; i < len(canvas.data); i += 3 {
		canvas.data[i+0] = c[0]
		canvas.data[i+1] = c[1]
		canvas.data[i+2] = c[2]
	}
	return nil
}

// DrawLine draws 8-connected line with Bresenham's algorithm, both endpoints included
func (canvas *BufferCanvas) DrawLine(p1, p2 PixelPoint, c Color) error {
	p1, p2, ok := clipSegment(p1, p2, canvas.width, canvas.height)
	if !ok {
		return nil
	}
	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		canvas.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillPolygon fills closed polygon. Pixel centers sit on integer coordinates.
func (canvas *BufferCanvas) FillPolygon(pts []PixelPoint, c Color) error {
	if len(pts) == 0 {
		return nil
	}
	// Bounds inclusive of the last pixel. Union can't be used: single-point rectangles are empty
	rect := image.Rectangle{Min: pts[0].ImagePoint(), Max: pts[0].ImagePoint()}
	for _, pt := range pts[1:] {
		rect.Min.X = min(rect.Min.X, pt.X)
		rect.Min.Y = min(rect.Min.Y, pt.Y)
		rect.Max.X = max(rect.Max.X, pt.X)
		rect.Max.Y = max(rect.Max.Y, pt.Y)
	}
	rect.Max = rect.Max.Add(image.Pt(1, 1))
	if !rect.Overlaps(image.Rect(0, 0, canvas.width, canvas.height)) {
		return nil
	}
	if len(pts) >= 3 {
		// Rasterize in a local frame just covering the polygon
		mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
		z := vector.NewRasterizer(rect.Dx(), rect.Dy())
		local := func(pt PixelPoint) (float32, float32) {
			return float32(pt.X-rect.Min.X) + 0.5, float32(pt.Y-rect.Min.Y) + 0.5
		}
		z.MoveTo(local(pts[0]))
		for _, pt := range pts[1:] {
			z.LineTo(local(pt))
		}
		z.ClosePath()
		z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
		for y := 0; y < rect.Dy(); y++ {
			for x := 0; x < rect.Dx(); x++ {
				if mask.AlphaAt(x, y).A >= 0x80 {
					canvas.set(rect.Min.X+x, rect.Min.Y+y, c)
				}
			}
		}
	}
	for i := range pts {
		if err := canvas.DrawLine(pts[i], pts[(i+1)%len(pts)], c); err != nil {
			return err
		}
	}
	return nil
}

// CopyFrom overwrites canvas with src pixels
func (canvas *BufferCanvas) CopyFrom(src Canvas) error {
	w, h := src.Size()
	if w != canvas.width || h != canvas.height {
		return errors.Errorf("Canvas size mismatch: %dx%d vs %dx%d", w, h, canvas.width, canvas.height)
	}
	if other, ok := src.(*BufferCanvas); ok {
		copy(canvas.data, other.data)
		return nil
	}
	img := src.Image()
	b := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nrgba := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			canvas.set(x, y, ToNative(RGB{R: nrgba.R, G: nrgba.G, B: nrgba.B}, OrderBGR))
		}
	}
	return nil
}

// Image returns RGBA copy of the canvas
func (canvas *BufferCanvas) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, canvas.width, canvas.height))
	for i, j := 0, 0; i < len(canvas.data); i, j = i+3, j+4 {
		img.Pix[j+0] = canvas.data[i+2]
		img.Pix[j+1] = canvas.data[i+1]
		img.Pix[j+2] = canvas.data[i+0]
		img.Pix[j+3] = 0xFF
	}
	return img
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// clipSegment cuts segment down to the part inside [0,w)x[0,h) with Liang-Barsky.
// Endpoints already inside are returned untouched so on-canvas lines rasterize the same.
func clipSegment(p1, p2 PixelPoint, w, h int) (PixelPoint, PixelPoint, bool) {
	if w <= 0 || h <= 0 {
		return p1, p2, false
	}
	inside := func(p PixelPoint) bool {
		return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
	}
	if inside(p1) && inside(p2) {
		return p1, p2, true
	}
	x0, y0 := float64(p1.X), float64(p1.Y)
	dx, dy := float64(p2.X)-x0, float64(p2.Y)-y0
	xmax, ymax := float64(w-1), float64(h-1)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, xmax - x0},
		{-dy, y0},
		{dy, ymax - y0},
	}
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return p1, p2, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return p1, p2, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return p1, p2, false
			}
			t1 = math.Min(t1, r)
		}
	}
	at := func(t float64) PixelPoint {
		return PixelPoint{
			X: min(max(int(math.Round(x0+t*dx)), 0), w-1),
			Y: min(max(int(math.Round(y0+t*dy)), 0), h-1),
		}
	}
	a, b := p1, p2
	if t0 > 0 {
		a = at(t0)
	}
	if t1 < 1 {
		b = at(t1)
	}
	return a, b, true
}
