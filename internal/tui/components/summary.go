package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates run state for rendering summaries.
type SummaryData struct {
	Horizon      int
	Completed    int
	Finished     bool
	Cancelled    bool
	Err          error
	HasPeak      bool
	PeakStep     int
	PeakInfected int
	AttackRate   float64
}

// Summary renders a textual run summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Horizon > 0 {
		lines = append(lines, fmt.Sprintf("Steps: %d/%d summarised", s.data.Completed, s.data.Horizon))
	}
	if s.data.HasPeak {
		lines = append(lines, fmt.Sprintf("Peak: %d infected at step %d", s.data.PeakInfected, s.data.PeakStep))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Run cancelled")
	case s.data.Err != nil:
		lines = append(lines, fmt.Sprintf("Run failed: %v", s.data.Err))
	case s.data.Finished && s.data.Horizon > 0:
		lines = append(lines, fmt.Sprintf("Attack rate: %.2f%%", s.data.AttackRate*100))
		if s.data.Completed == s.data.Horizon {
			lines = append(lines, "Run finished")
		} else {
			lines = append(lines, "Run finished early")
		}
	}

	return strings.Join(lines, "\n")
}
