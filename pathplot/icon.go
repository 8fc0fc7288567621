package pathplot

import "math"

const (
	iconSize = 10.0
)

// poseIcon returns triangle pointing along +X in local pixel frame:
// left-bottom, right-middle, left-top.
func poseIcon() []Point {
	xlft := -iconSize / 2
	xrgt := iconSize / 2
	ybot := iconSize / 1.25 / 2
	ytop := -iconSize / 2
	return []Point{
		{X: xlft, Y: ybot},
		{X: xrgt, Y: 0},
		{X: xlft, Y: ytop},
	}
}

// rotate turns pt by theta radians about the origin and truncates toward zero
func rotate(pt Point, theta float64) PixelPoint {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return PixelPoint{
		X: truncate(pt.X*c - pt.Y*s),
		Y: truncate(pt.X*s + pt.Y*c),
	}
}

// IconPolygon returns the pose icon rotated by theta and placed at center
func IconPolygon(center PixelPoint, theta float64) []PixelPoint {
	local := poseIcon()
	polygon := make([]PixelPoint, len(local))
	for i, pt := range local {
		polygon[i] = center.Add(rotate(pt, theta))
	}
	return polygon
}
