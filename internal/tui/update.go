package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case StepMsg:
		if m.finished {
			return m, nil
		}
		m.record(msg.Summary)
		return m, nil
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		if msg.Result != nil {
			m.result = msg.Result
			for _, s := range msg.Result.Steps {
				m.record(s)
			}
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}
