package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how far a run has advanced through its horizon.
type Progress struct {
	bar     progress.Model
	horizon int
}

// NewProgress creates a progress bar over a horizon of summarised steps.
func NewProgress(horizon int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Progress{bar: bar, horizon: horizon}
}

// Ratio is the completed share of the horizon, clamped to [0, 1].
func (p Progress) Ratio(completed int) float64 {
	if p.horizon <= 0 || completed <= 0 {
		return 0
	}
	if completed >= p.horizon {
		return 1
	}
	return float64(completed) / float64(p.horizon)
}

// View renders "completed/horizon steps", the bar and a percentage.
func (p Progress) View(completed int) string {
	ratio := p.Ratio(completed)
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d steps", completed, p.horizon))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio), fmt.Sprintf(" %3.0f%%", ratio*100))
}
