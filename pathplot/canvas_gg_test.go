package pathplot

import (
	"image/color"
	"testing"
)

func pixelRGB(canvas Canvas, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(canvas.Image().At(x, y)).(color.NRGBA)
}

// nearRGB allows 1 unit of float conversion error per channel
func nearRGB(got color.NRGBA, r, g, b int) bool {
	return absInt(int(got.R)-r) <= 1 && absInt(int(got.G)-g) <= 1 && absInt(int(got.B)-b) <= 1
}

func TestGGCanvasClear(t *testing.T) {
	canvas, err := NewGGCanvas(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if canvas.Order() != OrderRGB {
		t.Errorf("Expected RGB order, got %s", canvas.Order())
	}
	if got := pixelRGB(canvas, 3, 3); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected black canvas, got %v", got)
	}
	canvas.Clear(ToNative(RGB{R: 10, G: 20, B: 30}, OrderRGB))
	if got := pixelRGB(canvas, 3, 3); !nearRGB(got, 10, 20, 30) {
		t.Errorf("Expected (10, 20, 30), got %v", got)
	}
}

func TestGGCanvasFillPolygon(t *testing.T) {
	canvas, _ := NewGGCanvas(40, 40)
	c := ToNative(Yellow, OrderRGB)
	square := []PixelPoint{{10, 10}, {30, 10}, {30, 30}, {10, 30}}
	if err := canvas.FillPolygon(square, c); err != nil {
		t.Fatal(err)
	}
	if got := pixelRGB(canvas, 20, 20); !nearRGB(got, 255, 255, 0) {
		t.Errorf("Expected yellow center, got %v", got)
	}
	if got := pixelRGB(canvas, 2, 2); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected black corner, got %v", got)
	}
}

func TestGGCanvasLine(t *testing.T) {
	canvas, _ := NewGGCanvas(40, 40)
	c := ToNative(RGB{R: 255}, OrderRGB)
	if err := canvas.DrawLine(PixelPoint{5, 20}, PixelPoint{35, 20}, c); err != nil {
		t.Fatal(err)
	}
	if got := pixelRGB(canvas, 20, 20); got.R < 128 {
		t.Errorf("Expected red pixel on the line, got %v", got)
	}
	if got := pixelRGB(canvas, 20, 25); got.R != 0 {
		t.Errorf("Expected untouched pixel off the line, got %v", got)
	}
}

func TestGGCanvasCopyFromBuffer(t *testing.T) {
	src, _ := NewBufferCanvas(8, 8)
	src.DrawLine(PixelPoint{0, 4}, PixelPoint{7, 4}, ToNative(RGB{G: 200}, OrderBGR))
	dst, _ := NewGGCanvas(8, 8)
	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	if got := pixelRGB(dst, 5, 4); !nearRGB(got, 0, 200, 0) {
		t.Errorf("Expected (0, 200, 0), got %v", got)
	}
	// Drawing keeps working on the replaced context
	if err := dst.DrawLine(PixelPoint{0, 0}, PixelPoint{7, 0}, ToNative(RGB{B: 255}, OrderRGB)); err != nil {
		t.Fatal(err)
	}
}
