package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/vmath"
)

func openSimulation(t *testing.T, cols, rows int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(screen)
	if err := s.Open(constant.ScreenWidth, constant.ScreenHeight, constant.WindowTitle); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(s.Close)
	return s, screen
}

func waitForKeys(s *Surface, want int) []string {
	var names []string
	deadline := time.Now().Add(2 * time.Second)
	for len(names) < want && time.Now().Before(deadline) {
		names = s.PollKeys(names)
		time.Sleep(time.Millisecond)
	}
	return names
}

func TestFit_ExactScale(t *testing.T) {
	f := Fit(540, 480, 54, 24)
	if f.Scale != 10 {
		t.Errorf("Expected scale 10, got %v", f.Scale)
	}
	if f.Cols != 54 || f.SubRows != 48 {
		t.Errorf("Expected 54x48 subpixels, got %dx%d", f.Cols, f.SubRows)
	}
	if f.OffsetX != 0 || f.OffsetY != 0 {
		t.Errorf("Expected no letterbox, got offset (%d,%d)", f.OffsetX, f.OffsetY)
	}
}

func TestFit_Letterbox(t *testing.T) {
	// Wide terminal: height limits the scale, columns are centered
	f := Fit(540, 480, 200, 24)
	if f.Scale != 10 {
		t.Errorf("Expected scale 10, got %v", f.Scale)
	}
	if f.Cols != 54 {
		t.Errorf("Expected 54 drawn columns, got %d", f.Cols)
	}
	if f.OffsetX != (200-54)/2 {
		t.Errorf("Expected x offset %d, got %d", (200-54)/2, f.OffsetX)
	}

	pixels := make([]uint32, 540*480)
	if _, _, inside := f.Cell(pixels, 0, 0); inside {
		t.Error("Expected margin cell to be outside the drawn area")
	}
	if _, _, inside := f.Cell(pixels, f.OffsetX, 0); !inside {
		t.Error("Expected first drawn column to be inside")
	}
}

func TestFit_Degenerate(t *testing.T) {
	f := Fit(540, 480, 0, 0)
	if f.Cols != 0 || f.SubRows != 0 {
		t.Errorf("Expected empty fitting, got %dx%d", f.Cols, f.SubRows)
	}
	if _, _, inside := f.Cell(nil, 0, 0); inside {
		t.Error("Expected no cell inside an empty fitting")
	}
}

func TestFit_MaxPoolKeepsThinFeatures(t *testing.T) {
	canvas := render.NewCanvas(540, 480)
	// Single lit pixel in the bottom half of cell (0,0) at scale 10
	canvas.SetPixel(3, 14, render.RGBForeground)

	f := Fit(540, 480, 54, 24)
	top, bottom, inside := f.Cell(canvas.Pixels(), 0, 0)
	if !inside {
		t.Fatal("Expected cell to be inside")
	}
	if top != render.RGBBlack {
		t.Errorf("Expected black top subpixel, got %+v", top)
	}
	if bottom != render.RGBForeground {
		t.Errorf("Expected foreground bottom subpixel, got %+v", bottom)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "down"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "close"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift), "q"},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyName(tt.ev); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSurface_PumpDeliversKeys(t *testing.T) {
	s, screen := openSimulation(t, 54, 24)

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)

	names := waitForKeys(s, 2)
	if len(names) != 2 {
		t.Fatalf("Expected 2 key names, got %v", names)
	}
	if names[0] != "up" || names[1] != "space" {
		t.Errorf("Expected [up space], got %v", names)
	}

	if more := s.PollKeys(nil); len(more) != 0 {
		t.Errorf("Expected drained queue, got %v", more)
	}
}

func TestSurface_PresentDrawsHalfBlocks(t *testing.T) {
	s, screen := openSimulation(t, 54, 24)

	canvas := render.NewCanvas(constant.ScreenWidth, constant.ScreenHeight)
	// Light the top subpixel of cell (10,5) only
	canvas.FillRect(vmath.Rect{X: 100, Y: 100, Width: 10, Height: 10}, render.RGBForeground)

	if err := s.Present(canvas.Pixels(), canvas.Width(), canvas.Height()); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	mainc, _, style, _ := screen.GetContent(10, 5)
	if mainc != halfBlock {
		t.Errorf("Expected half block, got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	fr, fgG, fb := fg.RGB()
	want := render.RGBForeground
	if uint8(fr) != want.R || uint8(fgG) != want.G || uint8(fb) != want.B {
		t.Errorf("Expected foreground %+v, got (%d,%d,%d)", want, fr, fgG, fb)
	}
	br, bgG, bb := bg.RGB()
	if br != 0 || bgG != 0 || bb != 0 {
		t.Errorf("Expected black background, got (%d,%d,%d)", br, bgG, bb)
	}
}

func TestSurface_PresentRejectsWrongSize(t *testing.T) {
	s, _ := openSimulation(t, 54, 24)

	if err := s.Present(make([]uint32, 10*10), 10, 10); err == nil {
		t.Error("Expected error for mismatched frame size")
	}
}

func TestSurface_CloseStopsPump(t *testing.T) {
	s, _ := openSimulation(t, 54, 24)

	s.Close()
	s.Close()

	select {
	case <-s.pumpDone:
	case <-time.After(2 * time.Second):
		t.Error("Expected event pump to stop after Close")
	}
}
