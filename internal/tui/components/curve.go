package components

import (
	"strings"
)

var levels = []rune("▁▂▃▄▅▆▇█")

// Curve renders a series of counts as a one-line sparkline scaled to its
// maximum. Only the most recent Width points are drawn.
type Curve struct {
	values []int
	Width  int
}

// NewCurve creates a curve over values.
func NewCurve(values []int) Curve {
	return Curve{values: values, Width: 60}
}

// Max returns the largest value in the series.
func (c Curve) Max() int {
	maxValue := 0
	for _, v := range c.values {
		if v > maxValue {
			maxValue = v
		}
	}
	return maxValue
}

// View renders the sparkline. An empty series renders as an empty string.
func (c Curve) View() string {
	values := c.values
	if c.Width > 0 && len(values) > c.Width {
		values = values[len(values)-c.Width:]
	}
	if len(values) == 0 {
		return ""
	}

	maxValue := c.Max()
	var b strings.Builder
	for _, v := range values {
		if maxValue == 0 || v <= 0 {
			b.WriteRune(levels[0])
			continue
		}
		idx := v * (len(levels) - 1) / maxValue
		b.WriteRune(levels[idx])
	}
	return b.String()
}
