package pathplot

import (
	"log/slog"
	"time"
)

const (
	DefaultTitle = "X/Y"
	DefaultPause = time.Millisecond
)

var DefaultColor = Yellow

type plotterOptions struct {
	title       string
	pause       time.Duration
	color       RGB
	incremental bool
	logger      *slog.Logger
}

func defaultOptions() plotterOptions {
	return plotterOptions{
		title: DefaultTitle,
		pause: DefaultPause,
		color: DefaultColor,
	}
}

// Option configures PathPlotter
type Option func(*plotterOptions)

// WithTitle sets display surface title. Default "X/Y"
func WithTitle(title string) Option {
	return func(o *plotterOptions) {
		o.title = title
	}
}

// WithPause sets how long Plot waits for a key after showing a frame. Default 1ms
func WithPause(pause time.Duration) Option {
	return func(o *plotterOptions) {
		o.pause = pause
	}
}

// WithPauseMsec is WithPause in milliseconds
func WithPauseMsec(msec int) Option {
	return WithPause(time.Duration(msec) * time.Millisecond)
}

// WithColor sets trajectory and icon color. Default yellow
func WithColor(rgb RGB) Option {
	return func(o *plotterOptions) {
		o.color = rgb
	}
}

// WithIncrementalTrail makes Plot draw only the newest trajectory segment onto a
// persistent trail canvas instead of redrawing the whole trajectory every frame.
// Output is the same as long as the display keeps canvases intact between frames.
func WithIncrementalTrail() Option {
	return func(o *plotterOptions) {
		o.incremental = true
	}
}

// WithLogger overrides the package default logger (see SetLogger)
func WithLogger(l *slog.Logger) Option {
	return func(o *plotterOptions) {
		o.logger = l
	}
}
