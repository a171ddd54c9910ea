// Package report renders simulation results for people and for other tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/infectsim/internal/ensemble"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
	simerrors "github.com/alexisbeaulieu97/infectsim/pkg/errors"
)

// Writer renders results in one output format.
type Writer interface {
	WriteRun(w io.Writer, result *model.RunResult) error
	WriteEnsemble(w io.Writer, summary ensemble.Summary) error
}

// NewWriter returns the Writer for format: table, csv or json.
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return TableWriter{}, nil
	case "csv":
		return CSVWriter{}, nil
	case "json":
		return JSONWriter{Indent: "  "}, nil
	default:
		return nil, simerrors.NewValidationError("output", fmt.Sprintf("unknown output format %q", format), nil)
	}
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
