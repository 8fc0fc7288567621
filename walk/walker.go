// Package walk generates random-walk poses to drive a path plotter.
package walk

import (
	"math"
	"math/rand/v2"

	"github.com/LdDl/pathplot-go/pathplot"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultTurn is standard deviation of heading change per step, radians
	DefaultTurn = 0.5
)

// Walker moves one unit per step along its heading, then turns by a Gaussian amount.
// World Y is decremented by sin(theta), so positive headings turn clockwise on screen.
type Walker struct {
	pose pathplot.Pose
	turn float64
	src  rand.Source
}

// NewWalker creates walker starting at start. Same seed gives the same walk
func NewWalker(start pathplot.Pose, turn float64, seed uint64) *Walker {
	return &Walker{
		pose: start,
		turn: turn,
		src:  rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
}

// NewWalkerDefault starts at origin facing +X with DefaultTurn
func NewWalkerDefault(seed uint64) *Walker {
	return NewWalker(pathplot.NewPose(0, 0, 0), DefaultTurn, seed)
}

// Pose returns current pose
func (walker *Walker) Pose() pathplot.Pose {
	return walker.pose
}

// Next advances the walker and returns the pose to plot.
// The heading for the following step is drawn after the pose is produced.
func (walker *Walker) Next() pathplot.Pose {
	theta := walker.pose.Theta
	out := pathplot.NewPose(walker.pose.X+math.Cos(theta), walker.pose.Y-math.Sin(theta), theta)
	next := out
	if walker.turn > 0 {
		heading := distuv.Normal{Mu: theta, Sigma: walker.turn, Src: walker.src}
		next.Theta = heading.Rand()
	}
	walker.pose = next
	return out
}
