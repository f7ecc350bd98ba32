package engine

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/platform"
	"github.com/lixenwraith/pong/render"
)

// Driver owns the frame loop: poll, update, render, present, throttle
// All game state is touched only from the goroutine calling Run or Frame
type Driver struct {
	game    *Game
	surface platform.Surface
	clock   Clock
	keys    *input.KeyTable
	canvas  *render.Canvas

	names   []string // reused poll buffer
	elapsed int64    // previous frame duration, the next frame's simulation delta
	frames  uint64

	// MaxFrames stops Run after this many frames, 0 runs until quit
	MaxFrames uint64
}

// NewDriver wires a game to an opened surface
// A nil key table falls back to the default bindings
func NewDriver(game *Game, surface platform.Surface, clock Clock, keys *input.KeyTable) *Driver {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Driver{
		game:    game,
		surface: surface,
		clock:   clock,
		keys:    keys,
		canvas:  render.NewCanvas(constant.ScreenWidth, constant.ScreenHeight),
		names:   make([]string, 0, 16),
	}
}

// Game returns the driven game
func (d *Driver) Game() *Game { return d.game }

// Canvas returns the frame buffer, valid until the next Frame
func (d *Driver) Canvas() *render.Canvas { return d.canvas }

// Elapsed returns the delta the next frame will simulate, in milliseconds
func (d *Driver) Elapsed() int64 { return d.elapsed }

// Frames returns the number of completed frames
func (d *Driver) Frames() uint64 { return d.frames }

// Frame runs one loop iteration and reports whether quit was requested
// The frame completes even when quit is seen, matching a done-flag checked at loop top
func (d *Driver) Frame() (bool, error) {
	start := d.clock.Millis()

	d.names = d.surface.PollKeys(d.names[:0])
	in := input.Collect(d.keys, d.names)

	d.game.Update(in.Key, float64(d.elapsed))

	render.DrawScene(d.canvas, &d.game.Left, &d.game.Right, &d.game.Ball)
	if err := d.surface.Present(d.canvas.Pixels(), d.canvas.Width(), d.canvas.Height()); err != nil {
		return true, errors.Wrap(err, "present frame")
	}

	d.elapsed = d.clock.Millis() - start
	if d.elapsed < constant.MinFrameMillis {
		d.clock.Sleep(constant.MinFrameMillis - d.elapsed)
		d.elapsed = d.clock.Millis() - start
	}

	d.frames++
	return in.Quit, nil
}

// Run loops until quit, a present failure, or MaxFrames
func (d *Driver) Run() error {
	for {
		quit, err := d.Frame()
		if err != nil {
			return err
		}
		if quit {
			log.Printf("quit after %d frames", d.frames)
			return nil
		}
		if d.MaxFrames > 0 && d.frames >= d.MaxFrames {
			log.Printf("frame limit %d reached", d.MaxFrames)
			return nil
		}
	}
}
