package pathplot

import (
	"image"
	"time"

	"github.com/pkg/errors"
)

// CanvasFactory allocates canvases for a display
type CanvasFactory func(width, height int) (Canvas, error)

// BufferCanvasFactory allocates BGR BufferCanvas
func BufferCanvasFactory(width, height int) (Canvas, error) {
	return NewBufferCanvas(width, height)
}

// GGCanvasFactory allocates RGB GGCanvas
func GGCanvasFactory(width, height int) (Canvas, error) {
	return NewGGCanvas(width, height)
}

var _ Display = (*HeadlessDisplay)(nil)

// HeadlessDisplay keeps shown frames in memory and replays scripted key presses.
// WaitKey does not sleep unless Realtime is set.
type HeadlessDisplay struct {
	// Realtime makes WaitKey sleep for the full timeout when no key is queued
	Realtime bool

	newCanvas CanvasFactory
	title     string
	opened    bool
	frames    int
	lastFrame image.Image
	keys      []Key
	waits     []time.Duration
}

// NewHeadlessDisplay creates display allocating canvases with factory. Nil factory means BufferCanvasFactory
func NewHeadlessDisplay(factory CanvasFactory) *HeadlessDisplay {
	if factory == nil {
		factory = BufferCanvasFactory
	}
	return &HeadlessDisplay{
		newCanvas: factory,
	}
}

// Open names the surface
func (display *HeadlessDisplay) Open(title string) error {
	display.title = title
	display.opened = true
	return nil
}

// NewCanvas allocates canvas via factory
func (display *HeadlessDisplay) NewCanvas(width, height int) (Canvas, error) {
	if !display.opened {
		return nil, errors.New("display is not opened")
	}
	return display.newCanvas(width, height)
}

// Show stores snapshot of the canvas
func (display *HeadlessDisplay) Show(canvas Canvas) error {
	if !display.opened {
		return errors.New("display is not opened")
	}
	display.lastFrame = canvas.Image()
	display.frames++
	return nil
}

// WaitKey pops the oldest scripted key, or returns KeyNone
func (display *HeadlessDisplay) WaitKey(timeout time.Duration) (Key, error) {
	display.waits = append(display.waits, timeout)
	if len(display.keys) > 0 {
		key := display.keys[0]
		display.keys = display.keys[1:]
		return key, nil
	}
	if display.Realtime && timeout > 0 {
		time.Sleep(timeout)
	}
	return KeyNone, nil
}

// PressKey queues key for a future WaitKey
func (display *HeadlessDisplay) PressKey(key Key) {
	display.keys = append(display.keys, key)
}

// Title returns surface title given to Open
func (display *HeadlessDisplay) Title() string {
	return display.title
}

// Frames returns number of shown frames
func (display *HeadlessDisplay) Frames() int {
	return display.frames
}

// LastFrame returns the most recently shown image, nil before first Show
func (display *HeadlessDisplay) LastFrame() image.Image {
	return display.lastFrame
}

// Waits returns timeouts passed to WaitKey, in call order
func (display *HeadlessDisplay) Waits() []time.Duration {
	return display.waits
}
