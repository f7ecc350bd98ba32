package constant

import "time"

// Game Loop Timing
const (
	// MinFrameDuration is the floor applied to every frame (~166 FPS ceiling)
	MinFrameDuration = 6 * time.Millisecond

	// MinFrameMillis is MinFrameDuration in clock units
	MinFrameMillis = int64(MinFrameDuration / time.Millisecond)
)

// Screen geometry, fixed at compile time
const (
	ScreenWidth  = 540
	ScreenHeight = 480

	ScreenHorizontalCenter = ScreenWidth / 2
	ScreenVerticalCenter   = ScreenHeight / 2

	WindowTitle = "Pong Song"
)
