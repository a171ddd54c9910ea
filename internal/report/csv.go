package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/alexisbeaulieu97/infectsim/internal/ensemble"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
)

// CSVWriter writes one row per step with a header line.
type CSVWriter struct{}

var runHeader = []string{
	"step", "infected", "new_infections", "ever_infected",
	"total_contacts", "contacts_if_infected", "prevalence_in_contacts", "overall_prevalence",
}

var ensembleHeader = []string{
	"step", "mean_infected", "min_infected", "max_infected", "mean_new_infections", "mean_overall_prevalence",
}

// WriteRun writes the per-step summaries of result.
func (CSVWriter) WriteRun(w io.Writer, result *model.RunResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(runHeader); err != nil {
		return err
	}
	if result != nil {
		for _, s := range result.Steps {
			record := []string{
				strconv.Itoa(s.Step),
				strconv.Itoa(s.Infected),
				strconv.Itoa(s.NewInfections),
				strconv.Itoa(s.EverInfected),
				strconv.Itoa(s.TotalContacts),
				strconv.Itoa(s.ContactsIfInfected),
				formatFloat(s.PrevalenceInContacts),
				formatFloat(s.OverallPrevalence),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEnsemble writes the per-step ensemble statistics.
func (CSVWriter) WriteEnsemble(w io.Writer, summary ensemble.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ensembleHeader); err != nil {
		return err
	}
	for _, s := range summary.Steps {
		record := []string{
			strconv.Itoa(s.Step),
			formatFloat(s.MeanInfected),
			strconv.Itoa(s.MinInfected),
			strconv.Itoa(s.MaxInfected),
			formatFloat(s.MeanNewInfections),
			formatFloat(s.MeanOverallPrevalence),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
