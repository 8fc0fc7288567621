//go:build !cgo

// Package ebitendisplay shows plotter frames in a desktop window.
package ebitendisplay

import (
	"time"

	"github.com/LdDl/pathplot-go/pathplot"
	"github.com/pkg/errors"
)

var errNoCgo = errors.New("window display requires cgo (build/run with CGO_ENABLED=1)")

// Window is unavailable without cgo: every call fails
type Window struct{}

// New creates window display. Scale enlarges window relative to canvas size
func New(scale int) *Window {
	return &Window{}
}

// Open sets window title
func (window *Window) Open(title string) error {
	return errNoCgo
}

// NewCanvas allocates RGB canvas and sizes the window after the first one
func (window *Window) NewCanvas(width, height int) (pathplot.Canvas, error) {
	return nil, errNoCgo
}

// Show publishes canvas snapshot to be drawn on the next window refresh
func (window *Window) Show(canvas pathplot.Canvas) error {
	return errNoCgo
}

// WaitKey waits for a key pressed in the window. Closed window reports ESC
func (window *Window) WaitKey(timeout time.Duration) (pathplot.Key, error) {
	return pathplot.KeyNone, errNoCgo
}

// Run starts loop in its own goroutine and blocks in the window event loop
// until loop returns or the window is closed. Returns loop's error.
func (window *Window) Run(loop func() error) error {
	return errNoCgo
}
