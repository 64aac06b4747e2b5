package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/harborgrid-justin/appropriations/compliance"
	"github.com/harborgrid-justin/appropriations/finding"
	"github.com/harborgrid-justin/appropriations/output"
)

// renderResult writes a transaction result: errors, warnings, the ADA
// severity verdict and its reporting routing.
func renderResult(w io.Writer, res *compliance.TransactionResult) {
	styles := output.NewStyles(w)

	for _, f := range res.Errors {
		renderFinding(w, styles, styles.Error("error"), f)
	}
	for _, f := range res.Warnings {
		renderFinding(w, styles, styles.Warning("warning"), f)
	}

	if res.BonaFide.Exception != compliance.ExceptionNone {
		_, _ = fmt.Fprintf(w, "  %s bona fide need satisfied via %s\n",
			styles.Dim("note"), styles.Keyword(res.BonaFide.Exception.String()))
	}

	if len(res.ADA.Violations) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%s %s\n",
			styles.Severity(res.ADA.Severity, "ADA severity:"),
			styles.Severity(res.ADA.Severity, strings.ToUpper(res.ADA.Severity.String())))

		if res.ADA.Reporting.Required {
			_, _ = fmt.Fprintf(w, "  report to %s within %s\n",
				strings.Join(res.ADA.Reporting.Recipients, ", "),
				res.ADA.Reporting.Deadline)
		}
		if res.ADA.Advisory != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", styles.Severity(finding.SeverityCritical, res.ADA.Advisory))
		}
	}
}

func renderFinding(w io.Writer, styles *output.Styles, label string, f finding.Finding) {
	_, _ = fmt.Fprintf(w, "%s %s %s", label, styles.Code(f.Code), f.Message)
	if f.Statute != "" {
		_, _ = fmt.Fprintf(w, " (%s)", styles.Statute(f.Statute))
	}
	_, _ = fmt.Fprintln(w)
}
