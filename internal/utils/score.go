package util

import "math"

type ScoreColor string

const (
	ScoreGreen  ScoreColor = "green"
	ScoreYellow ScoreColor = "yellow"
	ScoreRed    ScoreColor = "red"
)

// Percentage rounds half up. A zero total scores 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(score)/float64(total)*100 + 0.5))
}

func ScoreColorFor(percentage int) ScoreColor {
	switch {
	case percentage >= 80:
		return ScoreGreen
	case percentage >= 60:
		return ScoreYellow
	default:
		return ScoreRed
	}
}

func ScoreEmoji(percentage int) string {
	switch {
	case percentage >= 80:
		return "🎉"
	case percentage >= 60:
		return "👍"
	default:
		return "📚"
	}
}
