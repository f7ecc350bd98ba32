package vmath

// Position is a floating-point point in screen space, origin top-left
type Position struct {
	X, Y float64
}

// Translate returns p displaced by velocity (units/sec) over elapsedMillis
func (p Position) Translate(vx, vy, elapsedMillis float64) Position {
	dt := elapsedMillis / 1000
	return Position{X: p.X + vx*dt, Y: p.Y + vy*dt}
}

// Lerp linearly interpolates between start and end
// percent=0 returns start, percent=1 returns end, values outside are extrapolated
func Lerp(start, end, percent float64) float64 {
	return start + (end-start)*percent
}
