//go:build sdl

package main

import _ "github.com/lixenwraith/pong/platform/sdl"
