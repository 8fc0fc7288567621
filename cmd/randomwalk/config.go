package main

import (
	"flag"
	"fmt"
	"time"
)

type invalidArgErr struct {
	flag, desc string
}

func (i invalidArgErr) Error() string {
	return fmt.Sprintf("invalid flag -%s: %s", i.flag, i.desc)
}

type config struct {
	display     string
	size        int
	extent      float64
	title       string
	pauseMsec   int
	seed        uint64
	turn        float64
	noise       float64
	smooth      bool
	incremental bool
	frames      uint64
	scale       int
	verbose     bool
}

// parseConfig reads flags. Running without any reproduces the classic demo:
// 600px window, box (-50,-50)..(50,50), 100ms per frame.
func parseConfig(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	fs.StringVar(&cfg.display, "display", "window", "Where to draw: window, term or headless.")
	fs.IntVar(&cfg.size, "size", 600, "Canvas side length in pixels.")
	fs.Float64Var(&cfg.extent, "extent", 50, "Half side of the visible world box.")
	fs.StringVar(&cfg.title, "title", "Random Walk", "Display title.")
	fs.IntVar(&cfg.pauseMsec, "pause", 100, "Milliseconds to wait for a key after every frame.")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Random seed (0 = time based).")
	fs.Float64Var(&cfg.turn, "turn", 0.5, "Standard deviation of heading change per step, radians.")
	fs.Float64Var(&cfg.noise, "noise", 0, "Standard deviation of position noise added to every pose.")
	fs.BoolVar(&cfg.smooth, "smooth", false, "Smooth noisy positions with Kalman filter before plotting.")
	fs.BoolVar(&cfg.incremental, "incremental", false, "Draw only the newest trajectory segment per frame.")
	fs.Uint64Var(&cfg.frames, "frames", 0, "Stop after N frames (0 = run until ESC).")
	fs.IntVar(&cfg.scale, "scale", 1, "Window scale factor.")
	fs.BoolVar(&cfg.verbose, "v", false, "Log to stderr.")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch cfg.display {
	case "window", "term", "headless":
	default:
		return config{}, invalidArgErr{"display", "must be one of window, term, headless"}
	}
	if cfg.size < 1 {
		return config{}, invalidArgErr{"size", "must be > 0"}
	}
	if !(cfg.extent > 0) {
		return config{}, invalidArgErr{"extent", "must be > 0"}
	}
	if cfg.pauseMsec < 0 {
		return config{}, invalidArgErr{"pause", "must be >= 0"}
	}
	if cfg.turn < 0 || cfg.noise < 0 {
		return config{}, invalidArgErr{"turn,noise", "must be >= 0"}
	}
	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
