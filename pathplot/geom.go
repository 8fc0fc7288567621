package pathplot

import (
	"image"
	"math"
)

// Pose is a world-space position with heading in radians.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

func NewPose(x, y, theta float64) Pose {
	return Pose{
		X:     x,
		Y:     y,
		Theta: theta,
	}
}

// Point returns pose position
func (pose Pose) Point() Point {
	return Point{X: pose.X, Y: pose.Y}
}

// Point is a world-coordinate position
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// axis returns X for idx == 0 and Y otherwise
func (pt Point) axis(idx int) float64 {
	if idx == 0 {
		return pt.X
	}
	return pt.Y
}

// PixelPoint is an integer canvas coordinate
type PixelPoint struct {
	X int
	Y int
}

func NewPixelPoint(x, y int) PixelPoint {
	return PixelPoint{
		X: x,
		Y: y,
	}
}

func NewPixelPointFrom(point image.Point) PixelPoint {
	return PixelPoint{
		X: point.X,
		Y: point.Y,
	}
}

// ImagePoint converts to image.Point
func (pt PixelPoint) ImagePoint() image.Point {
	return image.Point{X: pt.X, Y: pt.Y}
}

// Add returns pt translated by other
func (pt PixelPoint) Add(other PixelPoint) PixelPoint {
	return PixelPoint{X: pt.X + other.X, Y: pt.Y + other.Y}
}

// BoundingBox is the visible world region. Upper must be strictly greater than Lower on both axes.
type BoundingBox struct {
	Lower Point
	Upper Point
}

func NewBoundingBox(lower, upper Point) BoundingBox {
	return BoundingBox{
		Lower: lower,
		Upper: upper,
	}
}

// Validate checks that both axes have positive span
func (box BoundingBox) Validate() error {
	if !(box.Upper.X > box.Lower.X) {
		return &ConfigurationError{
			Field:  "bounding box",
			Reason: spanReason("x", box.Lower.X, box.Upper.X),
		}
	}
	if !(box.Upper.Y > box.Lower.Y) {
		return &ConfigurationError{
			Field:  "bounding box",
			Reason: spanReason("y", box.Lower.Y, box.Upper.Y),
		}
	}
	return nil
}

// halfSpan returns (upper - lower) / 2 for the given axis
func (box BoundingBox) halfSpan(idx int) float64 {
	return (box.Upper.axis(idx) - box.Lower.axis(idx)) / 2
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}
