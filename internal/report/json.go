package report

import (
	"encoding/json"
	"io"

	"github.com/alexisbeaulieu97/infectsim/internal/ensemble"
	"github.com/alexisbeaulieu97/infectsim/internal/model"
)

// JSONWriter encodes results as a single JSON document.
type JSONWriter struct {
	Indent string
}

// WriteRun encodes result.
func (j JSONWriter) WriteRun(w io.Writer, result *model.RunResult) error {
	return j.encode(w, result)
}

// WriteEnsemble encodes summary.
func (j JSONWriter) WriteEnsemble(w io.Writer, summary ensemble.Summary) error {
	return j.encode(w, summary)
}

func (j JSONWriter) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(v)
}
