package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/infectsim/internal/ensemble"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	"github.com/alexisbeaulieu97/infectsim/internal/simulation"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	peakStyle   = cellStyle.Foreground(lipgloss.Color("196"))
)

// TableWriter renders a styled, human-readable table.
type TableWriter struct{}

// WriteRun renders a headline block followed by one row per step.
func (TableWriter) WriteRun(w io.Writer, result *model.RunResult) error {
	if result == nil {
		return fmt.Errorf("render table: result is nil")
	}

	p := result.Parameters
	headline := []string{
		titleStyle.Render(displayName(result.Name)),
		field("run", result.RunID),
		field("seed", strconv.FormatUint(result.Seed, 10)),
		field("population", strconv.Itoa(p.PopulationSize)),
		field("attack rate", percent(result.AttackRate())),
		field("first-step risk (closed form)",
			percent(simulation.ExpectedPoissonRisk(p.InitialPrevalenceInContacts, p.RatePerInfectedContact, p.ContactNumberParameter))),
	}
	peak, hasPeak := result.Peak()
	if hasPeak {
		headline = append(headline, field("peak", fmt.Sprintf("%d infected at step %d", peak.Infected, peak.Step)))
	}

	rows := make([][]string, 0, len(result.Steps))
	for _, s := range result.Steps {
		rows = append(rows, []string{
			strconv.Itoa(s.Step),
			strconv.Itoa(s.Infected),
			strconv.Itoa(s.NewInfections),
			strconv.Itoa(s.EverInfected),
			percent(s.PrevalenceInContacts),
			percent(s.OverallPrevalence),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("step", "infected", "new", "ever", "prev. in contacts", "overall prev.").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case hasPeak && row == peak.Step:
				return peakStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, strings.Join(headline, "\n"), t.String()))
	return err
}

// WriteEnsemble renders per-step statistics across members.
func (TableWriter) WriteEnsemble(w io.Writer, summary ensemble.Summary) error {
	headline := []string{
		titleStyle.Render(displayName(summary.Name)),
		field("members", strconv.Itoa(summary.Members)),
		field("mean attack rate", percent(summary.MeanAttackRate)),
	}

	rows := make([][]string, 0, len(summary.Steps))
	for _, s := range summary.Steps {
		rows = append(rows, []string{
			strconv.Itoa(s.Step),
			strconv.FormatFloat(s.MeanInfected, 'f', 1, 64),
			strconv.Itoa(s.MinInfected),
			strconv.Itoa(s.MaxInfected),
			strconv.FormatFloat(s.MeanNewInfections, 'f', 1, 64),
			percent(s.MeanOverallPrevalence),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("step", "mean infected", "min", "max", "mean new", "mean prev.").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, strings.Join(headline, "\n"), t.String()))
	return err
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Simulation"
	}
	return name
}
