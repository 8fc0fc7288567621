// Command randomwalk plots a random walk until ESC is pressed or the process is interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/LdDl/pathplot-go/pathplot"
	"github.com/LdDl/pathplot-go/pathplot/ebitendisplay"
	"github.com/LdDl/pathplot-go/pathplot/termdisplay"
	"github.com/LdDl/pathplot-go/walk"
)

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.verbose {
		pathplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.display {
	case "window":
		window := ebitendisplay.New(cfg.scale)
		err = window.Run(func() error {
			return run(ctx, window, cfg)
		})
	case "term":
		var term *termdisplay.Terminal
		term, err = termdisplay.New()
		if err == nil {
			err = run(ctx, term, cfg)
			term.Close()
		}
	case "headless":
		display := pathplot.NewHeadlessDisplay(nil)
		display.Realtime = true
		err = run(ctx, display, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives plotter with random walk poses. Returns nil on ESC, interrupt or frame limit
func run(ctx context.Context, display pathplot.Display, cfg config) error {
	opts := []pathplot.Option{
		pathplot.WithTitle(cfg.title),
		pathplot.WithPauseMsec(cfg.pauseMsec),
	}
	if cfg.incremental {
		opts = append(opts, pathplot.WithIncrementalTrail())
	}
	plotter, err := pathplot.New(display, cfg.size,
		pathplot.NewPoint(-cfg.extent, -cfg.extent),
		pathplot.NewPoint(cfg.extent, cfg.extent),
		opts...,
	)
	if err != nil {
		return err
	}
	source := newPoseSource(cfg)
	for frame := uint64(0); cfg.frames == 0 || frame < cfg.frames; frame++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		pose, err := source.next()
		if err != nil {
			return err
		}
		ok, err := plotter.Plot(pose)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return nil
}

// poseSource chains walker, optional sensor noise and optional smoothing
type poseSource struct {
	walker   *walk.Walker
	noise    *walk.Noise
	smoother *walk.Smoother
}

func newPoseSource(cfg config) *poseSource {
	src := &poseSource{
		walker: walk.NewWalker(pathplot.NewPose(0, 0, 0), cfg.turn, cfg.seed),
	}
	if cfg.noise > 0 {
		src.noise = walk.NewNoise(cfg.noise, cfg.seed+1)
	}
	if cfg.smooth {
		src.smoother = walk.NewSmoother(1.0)
	}
	return src
}

func (src *poseSource) next() (pathplot.Pose, error) {
	pose := src.walker.Next()
	if src.noise != nil {
		pose = src.noise.Apply(pose)
	}
	if src.smoother != nil {
		return src.smoother.Smooth(pose)
	}
	return pose, nil
}
