package usecase

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

var (
	colorPass   = color.New(color.FgGreen, color.Bold)
	colorFail   = color.New(color.FgRed, color.Bold)
	colorField  = color.New(color.FgCyan)
	colorString = color.New(color.FgYellow)
)

// renderReport prints outstanding findings. Detected strings are masked in pipeline mode.
func renderReport(w io.Writer, result *model.ScanResult, decision *model.Decision) error {
	counts := result.CountTransitions()
	if _, err := fmt.Fprintf(w, "new: %d, resolved: %d, acknowledged: %d, unacknowledged: %d\n",
		counts[types.TransitionNew],
		counts[types.TransitionResolved],
		counts[types.TransitionOutstandingAck],
		counts[types.TransitionOutstandingUnack],
	); err != nil {
		return err
	}

	if decision.Passed() {
		_, err := colorPass.Fprintln(w, "No outstanding secrets")
		return err
	}

	for _, f := range decision.Outstanding {
		detected := string(f.StringDetected)
		if decision.PipelineMode {
			detected = f.StringDetected.Masked()
		}

		if _, err := fmt.Fprintf(w, "%s %s\n  %s %s (%s)\n  %s %s\n  %s %s\n",
			colorField.Sprint("path:"), f.Path,
			colorField.Sprint("commit:"), f.CommitHash.Short(), f.Branch,
			colorField.Sprint("reason:"), f.Reason,
			colorField.Sprint("string:"), colorString.Sprint(detected),
		); err != nil {
			return err
		}
	}

	if len(decision.Outstanding) > 0 {
		if _, err := colorFail.Fprintf(w, "%d outstanding secret(s) found\n", len(decision.Outstanding)); err != nil {
			return err
		}
	}
	for _, msg := range decision.Messages() {
		if _, err := colorFail.Fprintln(w, msg); err != nil {
			return err
		}
	}
	return nil
}
