//go:build cgo

// Package ebitendisplay shows plotter frames in a desktop window.
package ebitendisplay

import (
	"image"
	"image/draw"
	"sync"
	"time"

	"github.com/LdDl/pathplot-go/pathplot"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// Window is a pathplot.Display backed by an ebiten window.
// Run must be called from the main goroutine; the plotting loop runs beside it.
type Window struct {
	scale int

	mu    sync.Mutex
	frame *image.RGBA
	fresh bool
	w, h  int

	keys chan pathplot.Key
	done chan struct{}
}

// New creates window display. Scale enlarges window relative to canvas size
func New(scale int) *Window {
	if scale <= 0 {
		scale = 1
	}
	return &Window{
		scale: scale,
		keys:  make(chan pathplot.Key, 64),
		done:  make(chan struct{}),
	}
}

// Open sets window title
func (window *Window) Open(title string) error {
	ebiten.SetWindowTitle(title)
	return nil
}

// NewCanvas allocates RGB canvas and sizes the window after the first one
func (window *Window) NewCanvas(width, height int) (pathplot.Canvas, error) {
	window.mu.Lock()
	if window.w == 0 {
		window.w, window.h = width, height
		ebiten.SetWindowSize(width*window.scale, height*window.scale)
	}
	window.mu.Unlock()
	return pathplot.NewGGCanvas(width, height)
}

// Show publishes canvas snapshot to be drawn on the next window refresh.
// Once the window is closed frames are dropped and the next WaitKey reports ESC
func (window *Window) Show(canvas pathplot.Canvas) error {
	select {
	case <-window.done:
		return nil
	default:
	}
	src := canvas.Image()
	rgba, ok := src.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(src.Bounds())
		draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	}
	window.mu.Lock()
	window.frame = rgba
	window.fresh = true
	window.mu.Unlock()
	return nil
}

// WaitKey waits for a key pressed in the window. Closed window reports ESC
func (window *Window) WaitKey(timeout time.Duration) (pathplot.Key, error) {
	if timeout <= 0 {
		select {
		case key := <-window.keys:
			return key, nil
		case <-window.done:
			return pathplot.KeyEsc, nil
		default:
			return pathplot.KeyNone, nil
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case key := <-window.keys:
		return key, nil
	case <-window.done:
		return pathplot.KeyEsc, nil
	case <-timer.C:
		return pathplot.KeyNone, nil
	}
}

// Run starts loop in its own goroutine and blocks in the window event loop
// until loop returns or the window is closed. Returns loop's error.
func (window *Window) Run(loop func() error) error {
	loopErr := make(chan error, 1)
	go func() {
		loopErr <- loop()
	}()
	g := &windowGame{window: window, loopErr: loopErr}
	err := ebiten.RunGame(g)
	close(window.done)
	if g.finished {
		return g.err
	}
	if err != nil {
		return errors.Wrap(err, "Window loop failed")
	}
	// Window closed by user: loop observes ESC and stops
	return <-loopErr
}

type windowGame struct {
	window   *Window
	img      *ebiten.Image
	loopErr  chan error
	finished bool
	err      error
}

func (g *windowGame) Update() error {
	select {
	case err := <-g.loopErr:
		g.finished = true
		g.err = err
		return ebiten.Termination
	default:
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		code, ok := keyCode(k.String())
		if !ok {
			continue
		}
		select {
		case g.window.keys <- code:
		default:
		}
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.window.mu.Lock()
	frame, fresh := g.window.frame, g.window.fresh
	g.window.fresh = false
	g.window.mu.Unlock()
	if frame == nil {
		return
	}
	b := frame.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
		fresh = true
	}
	if fresh {
		g.img.WritePixels(frame.Pix)
	}
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.window.mu.Lock()
	defer g.window.mu.Unlock()
	if g.window.w == 0 {
		return outsideWidth, outsideHeight
	}
	return g.window.w, g.window.h
}
