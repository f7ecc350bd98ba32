//go:build ebiten

package main

import _ "github.com/lixenwraith/pong/platform/ebiten"
