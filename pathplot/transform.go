package pathplot

// Transform maps world coordinates to canvas pixels.
// The origin (first trajectory point) lands in the canvas center, half of the
// bounding box span on each axis maps to half of the canvas side.
// Pixel rows grow downwards, so Y is inverted.
type Transform struct {
	box    BoundingBox
	size   int
	origin Point
}

func NewTransform(box BoundingBox, size int, origin Point) Transform {
	return Transform{
		box:    box,
		size:   size,
		origin: origin,
	}
}

// Origin returns the world point mapped to the canvas center
func (tr Transform) Origin() Point {
	return tr.origin
}

// Apply converts world point to pixel coordinates. Result is not clipped to the canvas.
func (tr Transform) Apply(pt Point) PixelPoint {
	return PixelPoint{
		X: tr.axis(pt, 0, +1),
		Y: tr.axis(pt, 1, -1),
	}
}

func (tr Transform) axis(pt Point, idx int, sgn float64) int {
	coord := sgn * (pt.axis(idx) - tr.origin.axis(idx))
	coordspan := tr.box.halfSpan(idx)
	// Integer division on purpose: odd sizes put the center on the lower pixel
	pixspan := float64(tr.size / 2)
	return truncate(pixspan + pixspan*coord/coordspan)
}

// truncate rounds toward zero
func truncate(v float64) int {
	return int(v)
}
