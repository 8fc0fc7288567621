package pathplot

import (
	"image"
	"time"
)

// Key is a key code reported by Display.WaitKey
type Key int

const (
	// KeyNone means no key was pressed before the timeout
	KeyNone Key = -1
	// KeyEsc cancels a plotting session
	KeyEsc Key = 27
)

// Canvas is a fixed-size 3-channel pixel buffer.
// Colors passed in are expected in the order reported by Order().
// Drawing outside the canvas is silently clipped by implementations.
type Canvas interface {
	Size() (width, height int)
	Order() ChannelOrder
	Clear(c Color) error
	DrawLine(p1, p2 PixelPoint, c Color) error
	FillPolygon(pts []PixelPoint, c Color) error
	// CopyFrom overwrites the canvas with pixels of src. Both canvases must have the same size.
	CopyFrom(src Canvas) error
	Image() image.Image
}

// Display is a named surface able to present canvases and report key presses
type Display interface {
	Open(title string) error
	NewCanvas(width, height int) (Canvas, error)
	Show(canvas Canvas) error
	// WaitKey blocks for at most timeout and returns KeyNone if nothing was pressed.
	WaitKey(timeout time.Duration) (Key, error)
}
