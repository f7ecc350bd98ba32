//go:build sdl

// Package sdl presents the pixel buffer in an SDL2 window.
// Build with -tags sdl; requires the SDL2 development libraries.
package sdl

import (
	"runtime"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/platform"
)

func init() {
	// SDL video calls must stay on the thread that initialized it
	runtime.LockOSThread()
	platform.Register("sdl", func() platform.Surface { return New() })
}

// Surface is an SDL2 window with a streaming texture sized to the pixel buffer
// It also serves as the frame clock so timing comes from SDL's tick counter
type Surface struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width, height int

	closeOnce sync.Once
}

// New creates an unopened SDL surface
func New() *Surface {
	return &Surface{}
}

// Open initializes SDL video and creates the window, renderer, and texture
func (s *Surface) Open(width, height int, title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "sdl init")
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return errors.Wrap(err, "create window")
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	if err != nil {
		s.Close()
		return errors.Wrap(err, "create renderer")
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		s.Close()
		return errors.Wrap(err, "create texture")
	}
	s.texture = texture

	s.width, s.height = width, height
	return nil
}

// PollKeys drains the SDL event queue
func (s *Surface) PollKeys(dst []string) []string {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, input.NameClose)
		case *sdl.KeyboardEvent:
			if e.State != sdl.PRESSED || e.Repeat != 0 {
				continue
			}
			if name := strings.ToLower(sdl.GetKeyName(e.Keysym.Sym)); name != "" {
				dst = append(dst, name)
			}
		}
	}
	return dst
}

// Present uploads the buffer to the texture and flips
// Packed 0x00RRGGBB pixels match PIXELFORMAT_RGB888 directly
func (s *Surface) Present(pixels []uint32, width, height int) error {
	if err := platform.CheckFrame(pixels, width, height, s.width, s.height); err != nil {
		return err
	}
	if err := s.texture.UpdateRGBA(nil, pixels, width); err != nil {
		return errors.Wrap(err, "update texture")
	}
	if err := s.renderer.Clear(); err != nil {
		return errors.Wrap(err, "clear renderer")
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return errors.Wrap(err, "copy texture")
	}
	s.renderer.Present()
	return nil
}

// Close releases SDL resources; safe to call multiple times
func (s *Surface) Close() {
	s.closeOnce.Do(func() {
		if s.texture != nil {
			s.texture.Destroy()
		}
		if s.renderer != nil {
			s.renderer.Destroy()
		}
		if s.window != nil {
			s.window.Destroy()
		}
		sdl.Quit()
	})
}

// Millis reports SDL ticks since initialization
func (s *Surface) Millis() int64 {
	return int64(sdl.GetTicks())
}

// Sleep blocks via SDL_Delay
func (s *Surface) Sleep(ms int64) {
	if ms <= 0 {
		return
	}
	sdl.Delay(uint32(ms))
}
