package constant

// Paddle
const (
	// PaddleDistanceFromWall is the horizontal offset of each paddle center from its wall
	PaddleDistanceFromWall = 50

	PaddleWidth  = 5
	PaddleHeight = 40

	// PaddleSpeed is in pixels per second
	PaddleSpeed = 600
)

// Ball
const (
	// BallSpeed is the initial magnitude of each velocity axis in pixels per second
	BallSpeed = 150

	BallRadius = 30
)

// WinningScore is the score at which the next serve restarts the match
const WinningScore = 3
