package walk

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/LdDl/pathplot-go/pathplot"
	"github.com/pkg/errors"
)

// Smoother filters pose positions with 2D Kalman filter. Heading passes through unchanged.
type Smoother struct {
	dt      float64
	tracker *kalman_filter.Kalman2D
}

// NewSmoother creates smoother for measurements coming every dt time units
func NewSmoother(dt float64) *Smoother {
	return &Smoother{
		dt: dt,
	}
}

// Smooth feeds measurement into the filter and returns filtered pose.
// The first measurement initializes the filter state and is returned as is.
func (smoother *Smoother) Smooth(pose pathplot.Pose) (pathplot.Pose, error) {
	if smoother.tracker == nil {
		/* Kalman filter props */
		ux := 0.0
		uy := 0.0
		stdDevA := 2.0
		stdDevMx := 0.5
		stdDevMy := 0.5
		smoother.tracker = kalman_filter.NewKalman2D(smoother.dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(pose.X, pose.Y))
		return pose, nil
	}
	smoother.tracker.Predict()
	err := smoother.tracker.Update(pose.X, pose.Y)
	if err != nil {
		return pose, errors.Wrap(err, "Can't update pose filter")
	}
	stateX, stateY := smoother.tracker.GetState()
	return pathplot.NewPose(stateX, stateY, pose.Theta), nil
}
