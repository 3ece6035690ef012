// Package report formats fit results for human consumption.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/minphys/eosfit-go/pkg/eosfit/models"
)

// Format renders one fit result as a multi-line report: per-parameter value
// with standard error (or a fixed marker), then the fit-quality figures.
func Format(r *models.FitResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s fit", r.Model)
	if r.Series != "" {
		fmt.Fprintf(&b, " [%s]", r.Series)
	}
	b.WriteString(":\n")
	for _, p := range r.Parameters() {
		b.WriteString("  " + formatParam(p) + "\n")
	}
	fmt.Fprintf(&b, "  RSS = %.6g", r.RSS)
	if !math.IsNaN(r.ReducedRSS) {
		fmt.Fprintf(&b, " (reduced %.6g, %d dof)", r.ReducedRSS, r.DoF)
	}
	b.WriteString("\n")
	if !r.Converged {
		b.WriteString("  warning: fit did not converge\n")
	}
	return b.String()
}

// Write writes the formatted report to w.
func Write(w io.Writer, r *models.FitResult) error {
	_, err := io.WriteString(w, Format(r))
	return err
}

func formatParam(p models.Parameter) string {
	if p.Fixed {
		return fmt.Sprintf("%-4s= %.6g (fixed)", p.Name, p.Value)
	}
	if math.IsNaN(p.StdErr) {
		return fmt.Sprintf("%-4s= %.6g", p.Name, p.Value)
	}
	return fmt.Sprintf("%-4s= %.6g ± %.3g", p.Name, p.Value, p.StdErr)
}
