// Package terminal presents the pixel buffer on a text terminal through tcell.
//
// Each terminal cell shows two vertically stacked subpixels using an upper half
// block: foreground is the top subpixel, background the bottom. The buffer is
// scaled to fit the terminal with its aspect ratio preserved, and every subpixel
// takes the per-channel maximum of the source pixels it covers so one-pixel
// features such as paddle edges stay visible.
package terminal

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/platform"
)

const (
	halfBlock = '▀'

	// eventQueueSize bounds buffered key names between polls; overflow is dropped
	eventQueueSize = 256
)

func init() {
	platform.Register("terminal", func() platform.Surface { return New() })
}

// Surface is a tcell-backed platform.Surface
type Surface struct {
	screen     tcell.Screen
	requireTTY bool

	events  chan string
	resized atomic.Bool

	width, height int

	closeOnce sync.Once
	pumpDone  chan struct{}
}

// New creates a surface on the process terminal
func New() *Surface {
	return &Surface{requireTTY: true}
}

// NewWithScreen creates a surface on a caller-supplied screen, e.g. tcell.NewSimulationScreen
// The screen must not be initialized yet
func NewWithScreen(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Open initializes the terminal and starts the event pump
func (s *Surface) Open(width, height int, title string) error {
	if s.requireTTY && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal backend requires stdout to be a terminal")
	}

	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "create terminal screen")
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}

	s.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack))
	s.screen.HideCursor()
	s.screen.SetTitle(title)
	s.screen.Clear()

	s.width, s.height = width, height
	s.events = make(chan string, eventQueueSize)
	s.pumpDone = make(chan struct{})

	core.Go(s.pump)
	return nil
}

// pump forwards tcell events until the screen is finalized
func (s *Surface) pump() {
	defer close(s.pumpDone)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if name := KeyName(ev); name != "" {
				select {
				case s.events <- name:
				default:
				}
			}
		case *tcell.EventResize:
			s.resized.Store(true)
		}
	}
}

// KeyName converts a tcell key event to a canonical key name, "" if it has none
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.NameUp
	case tcell.KeyDown:
		return input.NameDown
	case tcell.KeyEscape:
		return input.NameEscape
	case tcell.KeyCtrlC:
		return input.NameClose
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return input.NameSpace
		}
		return strings.ToLower(string(r))
	}
	return ""
}

// PollKeys drains queued key names without blocking
func (s *Surface) PollKeys(dst []string) []string {
	for {
		select {
		case name := <-s.events:
			dst = append(dst, name)
		default:
			return dst
		}
	}
}

// Present downsamples the buffer onto the terminal grid and shows it
func (s *Surface) Present(pixels []uint32, width, height int) error {
	if err := platform.CheckFrame(pixels, width, height, s.width, s.height); err != nil {
		return err
	}
	if s.resized.Swap(false) {
		s.screen.Sync()
	}

	cols, rows := s.screen.Size()
	fit := Fit(width, height, cols, rows)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom, inside := fit.Cell(pixels, cx, cy)
			if !inside {
				s.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(tcell.ColorBlack))
				continue
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	s.screen.Show()
	return nil
}

// Close restores the terminal; safe to call multiple times
func (s *Surface) Close() {
	s.closeOnce.Do(func() {
		if s.screen != nil {
			s.screen.Fini()
		}
	})
}
