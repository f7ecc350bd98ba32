package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/pong/platform"
)

var (
	crashMu      sync.Mutex
	crashSurface platform.Surface

	// Replaced in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashSurface registers the surface to close before a crash report is printed
// Closing restores the terminal or tears down the window so the report is readable
func SetCrashSurface(s platform.Surface) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashSurface = s
}

// HandleCrash is the unified panic handler that restores the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashSurface
	crashSurface = nil
	crashMu.Unlock()

	if s != nil {
		s.Close()
	}

	// \r\n keeps the report aligned if the terminal is still in raw mode
	fmt.Fprintf(crashOutput, "\r\n\x1b[31mPONG CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure display cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
