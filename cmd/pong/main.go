package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/platform"
	_ "github.com/lixenwraith/pong/platform/headless"
	_ "github.com/lixenwraith/pong/platform/terminal"
)

// Environment keys read after the optional .env is loaded; flags override them
const (
	envBackend = "PONG_BACKEND"
	envKeys    = "PONG_KEYS"
	envDebug   = "PONG_DEBUG"
)

func main() {
	// Panic Recovery: restore the display before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// Missing .env is fine
	_ = godotenv.Load()

	backendFlag := flag.String("backend", envString(envBackend, "terminal"), fmt.Sprintf("Display backend: %v", platform.Names()))
	keysFlag := flag.String("keys", envString(envKeys, ""), "Path to a TOML keymap overriding default bindings")
	debugFlag := flag.Bool("debug", envBool(envDebug), "Write debug log to "+logDir+"/"+logFileName)
	framesFlag := flag.Uint64("frames", 0, "Stop after N frames (0 = until quit)")
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	keys, err := loadKeys(*keysFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load keymap: %v\n", err)
		os.Exit(1)
	}

	surface, err := platform.New(*backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := surface.Open(constant.ScreenWidth, constant.ScreenHeight, constant.WindowTitle); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize %s backend: %v\n", *backendFlag, err)
		os.Exit(1)
	}
	core.SetCrashSurface(surface)
	log.Printf("backend %s opened %dx%d", *backendFlag, constant.ScreenWidth, constant.ScreenHeight)

	// Backends with their own timing source drive the throttle
	clock, ok := surface.(engine.Clock)
	if !ok {
		clock = engine.NewMonotonicClock()
	}

	driver := engine.NewDriver(engine.NewGame(), surface, clock, keys)
	driver.MaxFrames = *framesFlag

	if runner, ok := surface.(platform.Runner); ok {
		err = runner.Run(driver.Run)
	} else {
		err = driver.Run()
	}

	// Normal exit cleanup
	surface.Close()
	core.SetCrashSurface(nil)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Game loop failed: %v\n", err)
		os.Exit(1)
	}
	g := driver.Game()
	log.Printf("exit after %d frames, score %d-%d", driver.Frames(), g.Left.Score, g.Right.Score)
}

// loadKeys merges an optional keymap file over the default bindings
func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	override, err := input.LoadKeyConfigFile(path)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(keys, override), nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
