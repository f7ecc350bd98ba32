package constant

// Score label placement
const (
	// ScoreLabelY is the vertical center of both score digits
	ScoreLabelY = 35

	// ScoreLabelLerp is how far the label sits from its paddle toward screen center
	ScoreLabelLerp = 0.2

	// ScoreBlockSize is the edge of one glyph cell in pixels
	ScoreBlockSize = 5
)

// ForegroundHex is the single drawing color
const ForegroundHex = "#21fb00"
