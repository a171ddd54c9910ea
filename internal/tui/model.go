package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/infectsim/internal/model"
)

// StepMsg carries a freshly computed step summary.
type StepMsg struct {
	Summary model.StepSummary
}

// DoneMsg reports that the run has ended, successfully or not.
type DoneMsg struct {
	Result *model.RunResult
	Err    error
}

type tickMsg struct{}

// Model contains the Bubbletea state for a live simulation run.
type Model struct {
	name           string
	params         model.Parameters
	history        []model.StepSummary
	result         *model.RunResult
	err            error
	total          int
	finished       bool
	cancelled      bool
	nonInteractive bool
}

// NewModel constructs a TUI model for a run over params.SimulationTime steps.
func NewModel(name string, params model.Parameters, nonInteractive bool) Model {
	total := params.SimulationTime
	if total < 0 {
		total = 0
	}
	return Model{
		name:           name,
		params:         params,
		history:        make([]model.StepSummary, 0, total),
		total:          total,
		nonInteractive: nonInteractive,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalSteps returns the horizon of the run.
func (m Model) TotalSteps() int {
	return m.total
}

// CompletedSteps returns the number of summarised steps.
func (m Model) CompletedSteps() int {
	return len(m.history)
}

// IsFinished reports whether the run has ended.
func (m Model) IsFinished() bool {
	return m.finished
}

// Err returns the failure reported by DoneMsg, if any.
func (m Model) Err() error {
	return m.err
}

// Cancelled reports whether the user interrupted the run.
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m *Model) record(summary model.StepSummary) bool {
	if summary.Step < len(m.history) {
		return false
	}
	m.history = append(m.history, summary)
	return true
}

func (m Model) infectedSeries() []int {
	values := make([]int, len(m.history))
	for i, s := range m.history {
		values[i] = s.Infected
	}
	return values
}

func (m Model) peak() (model.StepSummary, bool) {
	if m.result != nil {
		return m.result.Peak()
	}
	var best model.StepSummary
	found := false
	for _, s := range m.history {
		if !found || s.Infected > best.Infected {
			best = s
			found = true
		}
	}
	return best, found
}
