// Package pathplot renders a 2D pose trajectory onto a square pixel canvas.
//
// A PathPlotter owns a canvas on some Display, maps world coordinates to pixels
// (the first plotted pose lands in the canvas center, half of the bounding box
// span maps to half of the canvas side), redraws the whole trajectory on every
// Plot and marks the current pose with a small triangle rotated by its heading.
//
//	display := pathplot.NewHeadlessDisplay(nil)
//	plotter, err := pathplot.New(display, 600, pathplot.NewPoint(-50, -50), pathplot.NewPoint(50, 50))
//	if err != nil {
//		// *pathplot.ConfigurationError for degenerate bounding box
//	}
//	for {
//		ok, err := plotter.Plot(pathplot.NewPose(x, y, theta))
//		if err != nil || !ok {
//			break // ESC pressed or display failed
//		}
//	}
//
// Pixel coordinates are truncated toward zero. Points outside the bounding box
// are not clipped by the transform; canvases drop pixels that fall off-screen.
package pathplot
