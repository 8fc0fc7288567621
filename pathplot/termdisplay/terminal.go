// Package termdisplay shows plotter frames in a terminal, one character cell per block of pixels.
package termdisplay

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"
	"time"

	"github.com/LdDl/pathplot-go/pathplot"
	"github.com/gdamore/tcell"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const (
	minDisplayHeight = 4
	minDisplayWidth  = 10

	labelHeight = 1
	litRune     = '█'
)

// ErrDisplayTooSmall is returned when terminal can't fit the label and at least a few rows of canvas
type ErrDisplayTooSmall struct {
	height, width int
}

func (e ErrDisplayTooSmall) Error() string {
	return fmt.Sprintf("%vx%v terminal too small, must be at least %vx%v", e.width, e.height, minDisplayWidth, minDisplayHeight)
}

var (
	_ pathplot.Display = (*Terminal)(nil)
	_ io.Closer        = (*Terminal)(nil)
)

// Terminal is a pathplot.Display drawing into a tcell screen.
// Keys typed in the terminal feed WaitKey, Ctrl-C is reported as ESC.
type Terminal struct {
	screen tcell.Screen
	title  string

	keys     chan pathplot.Key
	done     chan struct{}
	initOnce sync.Once
	finiOnce sync.Once
	initErr  error
	// running is set once screen is initialized and owned by us, only then Fini is allowed
	running bool
}

// New creates terminal display on the process terminal
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "Can't create terminal screen")
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates terminal display on the given screen. Screen is initialized by Open
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		keys:   make(chan pathplot.Key, 64),
		done:   make(chan struct{}),
	}
}

// Open takes over the terminal and starts listening for keys
func (term *Terminal) Open(title string) error {
	term.initOnce.Do(func() {
		tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)
		if err := term.screen.Init(); err != nil {
			term.initErr = errors.Wrap(err, "Can't initialize terminal screen")
			return
		}
		width, height := term.screen.Size()
		if width < minDisplayWidth || height < minDisplayHeight {
			term.screen.Fini()
			term.initErr = ErrDisplayTooSmall{width: width, height: height}
			return
		}
		term.running = true
		go term.pollLoop()
	})
	if term.initErr != nil {
		return term.initErr
	}
	term.title = title
	return nil
}

// Close restores the terminal. Safe to call more than once and after failed Open
func (term *Terminal) Close() error {
	term.finiOnce.Do(func() {
		close(term.done)
		if term.running {
			term.screen.Fini()
		}
	})
	return nil
}

// NewCanvas allocates BGR buffer canvas
func (term *Terminal) NewCanvas(width, height int) (pathplot.Canvas, error) {
	return pathplot.NewBufferCanvas(width, height)
}

// Show draws title and a downsampled canvas and flushes the screen
func (term *Terminal) Show(canvas pathplot.Canvas) error {
	select {
	case <-term.done:
		return errors.New("terminal is closed")
	default:
	}
	term.screen.Clear()
	term.drawLabel()
	term.drawCanvas(canvas.Image())
	term.screen.Show()
	return nil
}

// WaitKey waits for a key typed in the terminal. Closed terminal reports ESC
func (term *Terminal) WaitKey(timeout time.Duration) (pathplot.Key, error) {
	if timeout <= 0 {
		select {
		case key := <-term.keys:
			return key, nil
		case <-term.done:
			return pathplot.KeyEsc, nil
		default:
			return pathplot.KeyNone, nil
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case key := <-term.keys:
		return key, nil
	case <-term.done:
		return pathplot.KeyEsc, nil
	case <-timer.C:
		return pathplot.KeyNone, nil
	}
}

// NOTE: tcell captures key events and signals while the screen is active,
// so Ctrl-C has to be translated here.
func (term *Terminal) pollLoop() {
	for {
		event := term.screen.PollEvent()
		if event == nil {
			return
		}
		switch event := event.(type) {
		case *tcell.EventKey:
			key, ok := translateKey(event)
			if !ok {
				continue
			}
			select {
			case term.keys <- key:
			default:
			}
		case *tcell.EventResize:
			term.screen.Sync()
		}
	}
}

func translateKey(event *tcell.EventKey) (pathplot.Key, bool) {
	switch event.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return pathplot.KeyEsc, true
	case tcell.KeyRune:
		return pathplot.Key(event.Rune()), true
	case tcell.KeyEnter:
		return pathplot.Key(13), true
	}
	return 0, false
}

func (term *Terminal) drawLabel() {
	style := tcell.StyleDefault.Reverse(true)
	width, _ := term.screen.Size()
	for col := 0; col < width; col++ {
		term.screen.SetContent(col, 0, ' ', nil, style)
	}
	x := 1
	for _, ru := range term.title {
		if x >= width {
			break
		}
		term.screen.SetContent(x, 0, ru, nil, style)
		x += runewidth.RuneWidth(ru)
	}
}

// cellBlock returns pixel block covered by a single cell.
// Cells are roughly twice as tall as wide, so blocks are too.
func cellBlock(canvasW, canvasH, cols, rows int) (int, int) {
	bw := ceilDiv(canvasW, cols)
	if byRows := ceilDiv(canvasH, rows*2); byRows > bw {
		bw = byRows
	}
	if bw < 1 {
		bw = 1
	}
	return bw, 2 * bw
}

func (term *Terminal) drawCanvas(img image.Image) {
	cols, rows := term.screen.Size()
	rows -= labelHeight
	b := img.Bounds()
	bw, bh := cellBlock(b.Dx(), b.Dy(), cols, rows)
	for row := 0; row < rows && row*bh < b.Dy(); row++ {
		for col := 0; col < cols && col*bw < b.Dx(); col++ {
			block := image.Rect(col*bw, row*bh, (col+1)*bw, (row+1)*bh).Add(b.Min).Intersect(b)
			c, lit := brightest(img, block)
			if !lit {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			term.screen.SetContent(col, row+labelHeight, litRune, nil, style)
		}
	}
}

// brightest returns the pixel with the largest channel sum within rect. Second value is false for all-black blocks
func brightest(img image.Image, rect image.Rectangle) (color.NRGBA, bool) {
	best := color.NRGBA{}
	bestSum := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			sum := int(c.R) + int(c.G) + int(c.B)
			if sum > bestSum {
				best, bestSum = c, sum
			}
		}
	}
	return best, bestSum > 0
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
