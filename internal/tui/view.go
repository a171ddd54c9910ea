package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/infectsim/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("infectsim • %s", m.title()))
	sections = append(sections, title)

	progress := components.NewProgress(m.total).View(len(m.history))
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	if len(m.history) > 0 {
		curve := components.NewCurve(m.infectedSeries())
		sections = append(sections,
			sectionStyle.Render("Infected"),
			curveStyle.Render(curve.View()),
			m.latestLine(),
		)
	}

	peak, hasPeak := m.peak()
	data := components.SummaryData{
		Horizon:      m.total,
		Completed:    len(m.history),
		Finished:     m.finished,
		Cancelled:    m.cancelled,
		Err:          m.err,
		HasPeak:      hasPeak,
		PeakStep:     peak.Step,
		PeakInfected: peak.Infected,
	}
	if m.result != nil {
		data.AttackRate = m.result.AttackRate()
	}
	summary := components.NewSummary(data).View()
	if strings.TrimSpace(summary) != "" {
		style := summaryStyle
		if m.err != nil {
			style = failureStyle.MarginTop(1)
		}
		sections = append(sections, sectionStyle.Render("Summary"), style.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) latestLine() string {
	last := m.history[len(m.history)-1]
	return fmt.Sprintf(" %s step %d: %d infected (%.2f%%), %d new",
		StateIcon(last.NewInfections), last.Step, last.Infected, last.OverallPrevalence*100, last.NewInfections)
}

func (m Model) title() string {
	if strings.TrimSpace(m.name) != "" {
		return m.name
	}
	return "Simulation"
}

// StateIcon returns the glyph summarising whether the epidemic grew in a step.
func StateIcon(newInfections int) string {
	if newInfections > 0 {
		return growingStyle.Render("▲")
	}
	return quietStyle.Render("•")
}
