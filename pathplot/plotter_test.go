package pathplot

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
)

var (
	testLower = NewPoint(-50, -50)
	testUpper = NewPoint(50, 50)
)

func newTestPlotter(t *testing.T, opts ...Option) (*PathPlotter, *HeadlessDisplay) {
	t.Helper()
	display := NewHeadlessDisplay(nil)
	plotter, err := New(display, 600, testLower, testUpper, opts...)
	if err != nil {
		t.Fatalf("Can't create plotter: %v", err)
	}
	return plotter, display
}

func TestNewDefaults(t *testing.T) {
	plotter, display := newTestPlotter(t)
	if display.Title() != "X/Y" {
		t.Errorf("Expected default title X/Y, got %s", display.Title())
	}
	if plotter.pause != time.Millisecond {
		t.Errorf("Expected default pause 1ms, got %v", plotter.pause)
	}
	// Yellow in BGR
	if plotter.Color() != (Color{0, 255, 255}) {
		t.Errorf("Expected BGR yellow {0 255 255}, got %v", plotter.Color())
	}
	if plotter.Active() {
		t.Error("Plotter should not be active before first plot")
	}
	if len(plotter.Trajectory()) != 0 {
		t.Errorf("Expected empty trajectory, got %v", plotter.Trajectory())
	}
	if w, h := plotter.Canvas().Size(); w != 600 || h != 600 {
		t.Errorf("Expected 600x600 canvas, got %dx%d", w, h)
	}
}

func TestNewOptions(t *testing.T) {
	display := NewHeadlessDisplay(GGCanvasFactory)
	plotter, err := New(display, 100, testLower, testUpper,
		WithTitle("Random Walk"),
		WithPauseMsec(100),
		WithColor(RGB{R: 10, G: 20, B: 30}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if plotter.Title() != "Random Walk" || display.Title() != "Random Walk" {
		t.Errorf("Expected title Random Walk, got %s / %s", plotter.Title(), display.Title())
	}
	// GG canvas is RGB: no swap
	if plotter.Color() != (Color{10, 20, 30}) {
		t.Errorf("Expected RGB color {10 20 30}, got %v", plotter.Color())
	}
	if _, err := plotter.Plot(NewPose(0, 0, 0)); err != nil {
		t.Fatal(err)
	}
	waits := display.Waits()
	if len(waits) != 1 || waits[0] != 100*time.Millisecond {
		t.Errorf("Expected single 100ms wait, got %v", waits)
	}
}

func TestNewConfigurationError(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		lower Point
		upper Point
		opts  []Option
	}{
		{"zero x span", 600, NewPoint(0, 0), NewPoint(0, 10), nil},
		{"zero y span", 600, NewPoint(0, 0), NewPoint(10, 0), nil},
		{"inverted", 600, NewPoint(50, 50), NewPoint(-50, -50), nil},
		{"zero size", 0, testLower, testUpper, nil},
		{"negative size", -600, testLower, testUpper, nil},
		{"negative pause", 600, testLower, testUpper, []Option{WithPause(-time.Millisecond)}},
	}
	for _, tc := range cases {
		display := NewHeadlessDisplay(nil)
		plotter, err := New(display, tc.size, tc.lower, tc.upper, tc.opts...)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if plotter != nil {
			t.Errorf("%s: expected nil plotter", tc.name)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected *ConfigurationError, got %T: %v", tc.name, err, err)
		}
		// Validation happens before any display call
		if display.opened {
			t.Errorf("%s: display should not be opened on configuration error", tc.name)
		}
	}
}

func TestPlotEndToEnd(t *testing.T) {
	plotter, display := newTestPlotter(t)

	ok, err := plotter.Plot(NewPose(0, 0, 0))
	if err != nil || !ok {
		t.Fatalf("Expected (true, nil), got (%v, %v)", ok, err)
	}
	ok, err = plotter.Plot(NewPose(1, 0, 0))
	if err != nil || !ok {
		t.Fatalf("Expected (true, nil), got (%v, %v)", ok, err)
	}

	track := plotter.Trajectory()
	expected := []Point{{0, 0}, {1, 0}}
	if len(track) != len(expected) {
		t.Fatalf("Expected trajectory %v, got %v", expected, track)
	}
	for i := range expected {
		if track[i] != expected[i] {
			t.Errorf("Trajectory[%d]: expected %v, got %v", i, expected[i], track[i])
		}
	}

	first, _ := plotter.CoordsToPixels(track[0])
	if first != (PixelPoint{300, 300}) {
		t.Errorf("Expected first pixel (300, 300), got %v", first)
	}
	// 300 + 300 * 1 / 50
	second, _ := plotter.CoordsToPixels(track[1])
	if second != (PixelPoint{306, 300}) {
		t.Errorf("Expected second pixel (306, 300), got %v", second)
	}
	if display.Frames() != 2 {
		t.Errorf("Expected 2 shown frames, got %d", display.Frames())
	}
	if math.Abs(plotter.PathLength()-1.0) > eps {
		t.Errorf("Expected path length 1, got %f", plotter.PathLength())
	}

	canvas := plotter.Canvas().(*BufferCanvas)
	yellow := Color{0, 255, 255}
	// Trajectory segment and icon at the newest pose
	for _, pt := range []PixelPoint{{300, 300}, {303, 300}, {306, 300}, {311, 300}, {301, 304}} {
		if got, _ := canvas.Pixel(pt.X, pt.Y); got != yellow {
			t.Errorf("Expected pixel %v yellow, got %v", pt, got)
		}
	}
	// Icon of the first frame is cleared away
	for _, pt := range []PixelPoint{{296, 300}, {295, 304}, {295, 295}, {10, 10}} {
		if got, _ := canvas.Pixel(pt.X, pt.Y); got != (Color{}) {
			t.Errorf("Expected pixel %v black, got %v", pt, got)
		}
	}
}

func TestPlotTrajectoryGrowth(t *testing.T) {
	plotter, _ := newTestPlotter(t)
	n := 25
	for i := 0; i < n; i++ {
		if _, err := plotter.Plot(NewPose(float64(i), float64(-i)/2, 0.1*float64(i))); err != nil {
			t.Fatal(err)
		}
		if len(plotter.Trajectory()) != i+1 {
			t.Fatalf("Expected %d entries, got %d", i+1, len(plotter.Trajectory()))
		}
	}
	for i, pt := range plotter.Trajectory() {
		if pt != NewPoint(float64(i), float64(-i)/2) {
			t.Errorf("Entry %d out of order: %v", i, pt)
		}
	}
	// Returned slice is a copy
	track := plotter.Trajectory()
	track[0] = NewPoint(999, 999)
	if plotter.Trajectory()[0] != NewPoint(0, 0) {
		t.Error("Trajectory() should return a copy")
	}
}

func TestPlotCancellation(t *testing.T) {
	keys := []struct {
		key  Key
		want bool
	}{
		{KeyNone, true},
		{Key('q'), true},
		{Key(26), true},
		{Key(28), true},
		{KeyEsc, false},
		{Key(27), false},
	}
	for _, tc := range keys {
		plotter, display := newTestPlotter(t)
		if tc.key != KeyNone {
			display.PressKey(tc.key)
		}
		ok, err := plotter.Plot(NewPose(0, 0, 0))
		if err != nil {
			t.Fatal(err)
		}
		if ok != tc.want {
			t.Errorf("Key %d: expected %v, got %v", tc.key, tc.want, ok)
		}
	}
}

func TestPlotAfterCancellation(t *testing.T) {
	plotter, display := newTestPlotter(t)
	display.PressKey(KeyEsc)
	if ok, _ := plotter.Plot(NewPose(0, 0, 0)); ok {
		t.Fatal("Expected cancellation")
	}
	ok, err := plotter.Plot(NewPose(1, 1, 0))
	if err != nil || !ok {
		t.Errorf("Expected plotting to continue, got (%v, %v)", ok, err)
	}
	if len(plotter.Trajectory()) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(plotter.Trajectory()))
	}
}

func TestTransformBeforeFirstPlot(t *testing.T) {
	plotter, _ := newTestPlotter(t)
	if _, err := plotter.CoordsToPixels(NewPoint(0, 0)); errors.Cause(err) != ErrNoTrajectory {
		t.Errorf("Expected ErrNoTrajectory, got %v", err)
	}
	plotter.Plot(NewPose(5, 5, 0))
	if !plotter.Active() {
		t.Error("Plotter should be active after first plot")
	}
	tr, err := plotter.Transform()
	if err != nil {
		t.Fatal(err)
	}
	if tr.Origin() != NewPoint(5, 5) {
		t.Errorf("Expected origin (5, 5), got %v", tr.Origin())
	}
}

func TestPlotOutsideBoundingBox(t *testing.T) {
	plotter, _ := newTestPlotter(t)
	plotter.Plot(NewPose(0, 0, 0))
	if _, err := plotter.Plot(NewPose(1000, -1000, 0)); err != nil {
		t.Fatalf("Points outside the box must not fail: %v", err)
	}
	px, _ := plotter.CoordsToPixels(NewPoint(1000, -1000))
	if px != (PixelPoint{6300, 6300}) {
		t.Errorf("Expected unclipped (6300, 6300), got %v", px)
	}
}

func TestIncrementalTrailMatchesFullRedraw(t *testing.T) {
	full, _ := newTestPlotter(t)
	incremental, _ := newTestPlotter(t, WithIncrementalTrail())
	poses := []Pose{
		NewPose(0, 0, 0),
		NewPose(1, -0.5, 0.3),
		NewPose(2, -1.5, 0.9),
		NewPose(2.5, -3, 1.6),
		NewPose(1.5, -4, 3.0),
		NewPose(0, -3.5, -2.5),
	}
	for _, pose := range poses {
		if _, err := full.Plot(pose); err != nil {
			t.Fatal(err)
		}
		if _, err := incremental.Plot(pose); err != nil {
			t.Fatal(err)
		}
		a := full.Canvas().(*BufferCanvas).Data()
		b := incremental.Canvas().(*BufferCanvas).Data()
		if !bytes.Equal(a, b) {
			t.Fatalf("Frames differ after pose %v", pose)
		}
	}
}

type failingDisplay struct {
	*HeadlessDisplay
	openErr error
	showErr error
	keyErr  error
}

func (display *failingDisplay) Open(title string) error {
	if display.openErr != nil {
		return display.openErr
	}
	return display.HeadlessDisplay.Open(title)
}

func (display *failingDisplay) Show(canvas Canvas) error {
	if display.showErr != nil {
		return display.showErr
	}
	return display.HeadlessDisplay.Show(canvas)
}

func (display *failingDisplay) WaitKey(timeout time.Duration) (Key, error) {
	if display.keyErr != nil {
		return KeyNone, display.keyErr
	}
	return display.HeadlessDisplay.WaitKey(timeout)
}

func TestDisplayErrorsPropagate(t *testing.T) {
	errBroken := errors.New("broken display")

	_, err := New(&failingDisplay{HeadlessDisplay: NewHeadlessDisplay(nil), openErr: errBroken}, 600, testLower, testUpper)
	if errors.Cause(err) != errBroken {
		t.Errorf("Expected open error to propagate, got %v", err)
	}

	display := &failingDisplay{HeadlessDisplay: NewHeadlessDisplay(nil), showErr: errBroken}
	plotter, err := New(display, 600, testLower, testUpper)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := plotter.Plot(NewPose(0, 0, 0))
	if ok || errors.Cause(err) != errBroken {
		t.Errorf("Expected (false, show error), got (%v, %v)", ok, err)
	}

	display = &failingDisplay{HeadlessDisplay: NewHeadlessDisplay(nil), keyErr: errBroken}
	plotter, _ = New(display, 600, testLower, testUpper)
	ok, err = plotter.Plot(NewPose(0, 0, 0))
	if ok || errors.Cause(err) != errBroken {
		t.Errorf("Expected (false, key error), got (%v, %v)", ok, err)
	}
}

func TestNilDisplay(t *testing.T) {
	if _, err := New(nil, 600, testLower, testUpper); err == nil {
		t.Error("Expected error for nil display")
	}
}
