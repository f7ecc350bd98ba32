package engine

// GameState gates which systems run in a frame
type GameState uint8

const (
	// StateReady waits for a serve; only the serve key has an effect
	StateReady GameState = iota
	// StatePlay runs controller, AI and physics
	StatePlay
	// StateOver is a terminal match state; no transition enters it, serve leaves it like Ready
	StateOver
)

func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlay:
		return "play"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// AcceptsServe reports whether the serve key starts a rally from this state
func (s GameState) AcceptsServe() bool {
	return s == StateReady || s == StateOver
}
