package model

import (
	"fmt"
	"io"
	"sort"

	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

// Statistics summarizes a whitelist
type Statistics struct {
	TotalStrings     int                          `json:"total_strings" bigquery:"total_strings"`
	UniqueStrings    int                          `json:"unique_strings" bigquery:"unique_strings"`
	Acknowledged     int                          `json:"acknowledged" bigquery:"acknowledged"`
	Unacknowledged   int                          `json:"unacknowledged" bigquery:"unacknowledged"`
	ByReason         map[types.Reason]int         `json:"-" bigquery:"-"`
	ByClassification map[types.Classification]int `json:"-" bigquery:"-"`

	strings []types.SecretString
}

func NewStatistics(set *FindingSet) *Statistics {
	stats := &Statistics{
		ByReason:         map[types.Reason]int{},
		ByClassification: map[types.Classification]int{},
	}

	unique := map[types.SecretString]struct{}{}
	for _, f := range set.Sorted() {
		stats.TotalStrings++
		if f.IsAcknowledged() {
			stats.Acknowledged++
		} else {
			stats.Unacknowledged++
		}
		stats.ByReason[f.Reason]++

		c := f.Classification
		if c == "" {
			c = types.ClassificationUnclassified
		}
		stats.ByClassification[c]++

		if _, ok := unique[f.StringDetected]; !ok {
			unique[f.StringDetected] = struct{}{}
			stats.strings = append(stats.strings, f.StringDetected)
		}
	}
	stats.UniqueStrings = len(unique)
	sort.Slice(stats.strings, func(i, j int) bool { return stats.strings[i] < stats.strings[j] })

	return stats
}

// Render writes a plain text summary. Detected strings are listed only when pipelineMode is false.
func (x *Statistics) Render(w io.Writer, pipelineMode bool) error {
	lines := []string{
		fmt.Sprintf("%-16s %d", "Total Strings", x.TotalStrings),
		fmt.Sprintf("%-16s %d", "Unique Strings", x.UniqueStrings),
		fmt.Sprintf("%-16s %d", "Acknowledged", x.Acknowledged),
		fmt.Sprintf("%-16s %d", "Unacknowledged", x.Unacknowledged),
	}

	reasons := make([]string, 0, len(x.ByReason))
	for r := range x.ByReason {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		lines = append(lines, fmt.Sprintf("  reason: %s = %d", r, x.ByReason[types.Reason(r)]))
	}

	classes := make([]string, 0, len(x.ByClassification))
	for c := range x.ByClassification {
		classes = append(classes, string(c))
	}
	sort.Strings(classes)
	for _, c := range classes {
		lines = append(lines, fmt.Sprintf("  classification: %s = %d", c, x.ByClassification[types.Classification(c)]))
	}

	if !pipelineMode {
		for _, s := range x.strings {
			lines = append(lines, "  string: "+string(s))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
