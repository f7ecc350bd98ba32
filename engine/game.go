package engine

import (
	"log"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/physics"
)

// Game owns both paddles, the ball and the state value
// Left is human-controlled, Right tracks the ball
type Game struct {
	Left  component.Paddle
	Right component.Paddle
	Ball  component.Ball
	State GameState

	// LastOutcome is the physics result of the most recent Play update
	LastOutcome physics.Outcome
}

// NewGame returns a match at 0-0 waiting for a serve
func NewGame() *Game {
	return &Game{
		Left:  component.NewPaddle(component.SideLeft),
		Right: component.NewPaddle(component.SideRight),
		Ball:  component.NewBall(),
		State: StateReady,
	}
}

// Update advances one frame with the frame's collapsed key
func (g *Game) Update(pressed input.Key, elapsedMillis float64) {
	switch g.State {
	case StatePlay:
		physics.UpdatePaddle(&g.Left, pressed, elapsedMillis)
		physics.UpdateAIPaddle(&g.Right, &g.Ball)
		g.LastOutcome = physics.UpdateBall(&g.Ball, &g.Left, &g.Right, elapsedMillis)
		if g.LastOutcome.Scored() {
			g.setState(StateReady)
			log.Printf("point: %s, score %d-%d", g.LastOutcome, g.Left.Score, g.Right.Score)
		}
	default:
		if pressed == input.KeySpace && g.State.AcceptsServe() {
			g.Serve()
		}
	}
}

// Serve starts a rally, restarting the match first if either side has reached WinningScore
func (g *Game) Serve() {
	if g.Left.Score == constant.WinningScore || g.Right.Score == constant.WinningScore {
		log.Printf("match restart from %d-%d", g.Left.Score, g.Right.Score)
		g.Left.Score = 0
		g.Right.Score = 0
	}
	g.LastOutcome = physics.OutcomeNone
	g.setState(StatePlay)
}

func (g *Game) setState(s GameState) {
	if g.State != s {
		log.Printf("state %s -> %s", g.State, s)
	}
	g.State = s
}
