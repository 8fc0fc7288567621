package pathplot

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PathPlotter draws a pose trajectory and an oriented pose icon onto a square canvas.
//
// The first plotted pose defines the canvas center. The view is never re-centered,
// so a trajectory leaving the bounding box is drawn (and clipped by the canvas) off-screen.
// Every Plot redraws the whole trajectory unless WithIncrementalTrail is used.
//
// PathPlotter is not safe for concurrent use.
type PathPlotter struct {
	id      uuid.UUID
	display Display
	canvas  Canvas
	// trail is only allocated in incremental mode
	trail      Canvas
	box        BoundingBox
	size       int
	title      string
	pause      time.Duration
	color      Color
	trajectory []Point
	logger     *slog.Logger
}

// New opens a display surface and allocates a size x size canvas on it.
// Returns *ConfigurationError when size is not positive, the bounding box has a
// non-positive span on any axis or pause is negative.
func New(display Display, size int, lower, upper Point, opts ...Option) (*PathPlotter, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if size <= 0 {
		return nil, &ConfigurationError{
			Field:  "display size",
			Reason: "must be positive",
		}
	}
	box := NewBoundingBox(lower, upper)
	if err := box.Validate(); err != nil {
		return nil, err
	}
	if options.pause < 0 {
		return nil, &ConfigurationError{
			Field:  "pause",
			Reason: "must not be negative",
		}
	}
	if display == nil {
		return nil, errors.New("pathplot: nil display")
	}
	logger := options.logger
	if logger == nil {
		logger = Logger()
	}

	if err := display.Open(options.title); err != nil {
		return nil, errors.Wrapf(err, "Can't open display '%s'", options.title)
	}
	canvas, err := display.NewCanvas(size, size)
	if err != nil {
		return nil, errors.Wrap(err, "Can't allocate canvas")
	}
	plotter := PathPlotter{
		id:         uuid.New(),
		display:    display,
		canvas:     canvas,
		box:        box,
		size:       size,
		title:      options.title,
		pause:      options.pause,
		color:      ToNative(options.color, canvas.Order()),
		trajectory: make([]Point, 0, 256),
	}
	if options.incremental {
		trail, err := display.NewCanvas(size, size)
		if err != nil {
			return nil, errors.Wrap(err, "Can't allocate trail canvas")
		}
		if err := trail.Clear(ToNative(Black, trail.Order())); err != nil {
			return nil, errors.Wrap(err, "Can't clear trail canvas")
		}
		plotter.trail = trail
	}
	plotter.logger = logger.With(slog.String("session", plotter.id.String()))
	plotter.logger.Info("path plotter opened",
		slog.String("title", plotter.title),
		slog.Int("size", size),
		slog.Any("lower", lower),
		slog.Any("upper", upper),
		slog.Duration("pause", plotter.pause),
		slog.String("order", canvas.Order().String()),
		slog.Bool("incremental", options.incremental),
	)
	return &plotter, nil
}

// ID returns session identifier
func (plotter *PathPlotter) ID() uuid.UUID {
	return plotter.id
}

// Title returns display surface title
func (plotter *PathPlotter) Title() string {
	return plotter.title
}

// Size returns canvas side length in pixels
func (plotter *PathPlotter) Size() int {
	return plotter.size
}

// BoundingBox returns configured visible region
func (plotter *PathPlotter) BoundingBox() BoundingBox {
	return plotter.box
}

// Color returns stored color in canvas native order
func (plotter *PathPlotter) Color() Color {
	return plotter.color
}

// Canvas returns frame canvas. Be careful: this is not copy, it is overwritten by every Plot
func (plotter *PathPlotter) Canvas() Canvas {
	return plotter.canvas
}

// Active reports whether at least one pose has been plotted
func (plotter *PathPlotter) Active() bool {
	return len(plotter.trajectory) > 0
}

// Trajectory returns copy of plotted positions, oldest first
func (plotter *PathPlotter) Trajectory() []Point {
	track := make([]Point, len(plotter.trajectory))
	copy(track, plotter.trajectory)
	return track
}

// PathLength returns summed euclidean length of the trajectory in world units
func (plotter *PathPlotter) PathLength() float64 {
	total := 0.0
	for k := 1; k < len(plotter.trajectory); k++ {
		total += euclideanDistance(plotter.trajectory[k-1], plotter.trajectory[k])
	}
	return total
}

// Transform returns current world-to-pixel transform.
// Returns ErrNoTrajectory until the first Plot.
func (plotter *PathPlotter) Transform() (Transform, error) {
	if len(plotter.trajectory) == 0 {
		return Transform{}, ErrNoTrajectory
	}
	return NewTransform(plotter.box, plotter.size, plotter.trajectory[0]), nil
}

// CoordsToPixels converts world point to canvas pixel coordinates
func (plotter *PathPlotter) CoordsToPixels(pt Point) (PixelPoint, error) {
	tr, err := plotter.Transform()
	if err != nil {
		return PixelPoint{}, err
	}
	return tr.Apply(pt), nil
}

// Plot appends pose to the trajectory, redraws the frame, shows it and waits for a key.
// Returns false when ESC was pressed. Calling Plot after that keeps working; stopping is up to the caller.
func (plotter *PathPlotter) Plot(pose Pose) (bool, error) {
	if plotter.trail == nil {
		if err := plotter.canvas.Clear(ToNative(Black, plotter.canvas.Order())); err != nil {
			return false, errors.Wrap(err, "Can't clear canvas")
		}
	}

	plotter.trajectory = append(plotter.trajectory, pose.Point())
	tr := NewTransform(plotter.box, plotter.size, plotter.trajectory[0])

	if err := plotter.drawTrajectory(tr); err != nil {
		return false, err
	}

	curr := tr.Apply(plotter.trajectory[len(plotter.trajectory)-1])
	icon := IconPolygon(curr, pose.Theta)
	if err := plotter.canvas.FillPolygon(icon, plotter.color); err != nil {
		return false, errors.Wrap(err, "Can't draw pose icon")
	}

	if err := plotter.display.Show(plotter.canvas); err != nil {
		return false, errors.Wrap(err, "Can't show canvas")
	}
	plotter.logger.Debug("frame",
		slog.Int("n", len(plotter.trajectory)),
		slog.Float64("x", pose.X),
		slog.Float64("y", pose.Y),
		slog.Float64("theta", pose.Theta),
		slog.Int("px", curr.X),
		slog.Int("py", curr.Y),
	)

	key, err := plotter.display.WaitKey(plotter.pause)
	if err != nil {
		return false, errors.Wrap(err, "Can't wait for key")
	}
	if key == KeyEsc {
		plotter.logger.Info("cancelled by user", slog.Int("frames", len(plotter.trajectory)))
		return false, nil
	}
	return true, nil
}

func (plotter *PathPlotter) drawTrajectory(tr Transform) error {
	n := len(plotter.trajectory)
	if plotter.trail != nil {
		if n > 1 {
			prev := tr.Apply(plotter.trajectory[n-2])
			curr := tr.Apply(plotter.trajectory[n-1])
			if err := plotter.trail.DrawLine(prev, curr, plotter.color); err != nil {
				return errors.Wrapf(err, "Can't draw trajectory segment %d", n-1)
			}
		}
		if err := plotter.canvas.CopyFrom(plotter.trail); err != nil {
			return errors.Wrap(err, "Can't copy trail canvas")
		}
		return nil
	}
	for k := 1; k < n; k++ {
		prev := tr.Apply(plotter.trajectory[k-1])
		curr := tr.Apply(plotter.trajectory[k])
		if err := plotter.canvas.DrawLine(prev, curr, plotter.color); err != nil {
			return errors.Wrapf(err, "Can't draw trajectory segment %d", k)
		}
	}
	return nil
}
