package input

// Key is the single game-relevant key observed in a frame
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeySpace
	KeyQuit
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyUp:    "up",
	KeyDown:  "down",
	KeySpace: "serve",
	KeyQuit:  "quit",
}

// String returns the action name used in keymap files
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ActionByName resolves an action name from a keymap file
func ActionByName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), true
		}
	}
	return KeyNone, false
}

// Canonical key names reported by platform backends
const (
	NameUp     = "up"
	NameDown   = "down"
	NameSpace  = "space"
	NameEscape = "escape"

	// NameClose is reported when the window or terminal asks to close; always quits
	NameClose = "close"
)

// Frame is the collapsed input of one frame
type Frame struct {
	Key  Key
	Quit bool
}

// Collect drains key names into one Frame
// Later recognized keys overwrite earlier ones; quit latches and never overwrites Key
func Collect(kt *KeyTable, names []string) Frame {
	var f Frame
	for _, name := range names {
		switch k := kt.Lookup(name); k {
		case KeyNone:
		case KeyQuit:
			f.Quit = true
		default:
			f.Key = k
		}
	}
	return f
}
