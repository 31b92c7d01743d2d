package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

// ScanExport is one row of the scan history table. It never carries detected strings.
type ScanExport struct {
	ScanID      types.ScanID     `json:"scan_id" bigquery:"scan_id"`
	Timestamp   time.Time        `json:"-" bigquery:"timestamp"`
	Repository  string           `json:"repository" bigquery:"repository"`
	Branch      types.BranchName `json:"branch" bigquery:"branch"`
	SinceCommit types.CommitSHA  `json:"since_commit" bigquery:"since_commit"`
	Passed      bool             `json:"passed" bigquery:"passed"`

	NewCount              int `json:"new_count" bigquery:"new_count"`
	ResolvedCount         int `json:"resolved_count" bigquery:"resolved_count"`
	OutstandingUnackCount int `json:"outstanding_unack_count" bigquery:"outstanding_unack_count"`
	OutstandingAckCount   int `json:"outstanding_ack_count" bigquery:"outstanding_ack_count"`

	Findings []*ExportFinding `json:"findings" bigquery:"findings"`
}

type ExportFinding struct {
	SecretGUID     types.FindingID      `json:"secret_guid" bigquery:"secret_guid"`
	Branch         types.BranchName     `json:"branch" bigquery:"branch"`
	CommitHash     types.CommitSHA      `json:"commit_hash" bigquery:"commit_hash"`
	Date           string               `json:"date" bigquery:"date"`
	Path           string               `json:"path" bigquery:"path"`
	Reason         types.Reason         `json:"reason" bigquery:"reason"`
	Transition     types.Transition     `json:"transition" bigquery:"transition"`
	Acknowledged   bool                 `json:"acknowledged" bigquery:"acknowledged"`
	Classification types.Classification `json:"classification" bigquery:"classification"`
}

// ScanExportRaw is the wire form of ScanExport. BigQuery storage API expects TIMESTAMP as microseconds.
type ScanExportRaw struct {
	ScanExport
	Timestamp int64 `json:"timestamp"`
}

func (x *ScanExport) Raw() *ScanExportRaw {
	return &ScanExportRaw{
		ScanExport: *x,
		Timestamp:  x.Timestamp.UnixMicro(),
	}
}

// NewScanExport builds an export row from a scan result. Resolved identities are taken from the known set.
func NewScanExport(input *ScanInput, result *ScanResult, decision *Decision, now time.Time) *ScanExport {
	repo := input.RepoPath
	if input.Remote() {
		repo = input.GitURL
	}

	exp := &ScanExport{
		ScanID:      result.ScanID,
		Timestamp:   now.UTC(),
		Repository:  repo,
		Branch:      input.Branch,
		SinceCommit: input.SinceCommit,
		Passed:      decision.Passed(),
		Findings:    []*ExportFinding{},
	}

	counts := result.CountTransitions()
	exp.NewCount = counts[types.TransitionNew]
	exp.ResolvedCount = counts[types.TransitionResolved]
	exp.OutstandingUnackCount = counts[types.TransitionOutstandingUnack]
	exp.OutstandingAckCount = counts[types.TransitionOutstandingAck]

	lookup := func(id types.FindingID) *Finding {
		if f := result.ReconciledResults.Get(id); f != nil {
			return f
		}
		return result.KnownSecrets.Get(id)
	}

	ids := make([]types.FindingID, 0, len(result.Transitions))
	for id := range result.Transitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		f := lookup(id)
		if f == nil {
			continue
		}
		exp.Findings = append(exp.Findings, &ExportFinding{
			SecretGUID:     id,
			Branch:         f.Branch,
			CommitHash:     f.CommitHash,
			Date:           f.Date,
			Path:           f.Path,
			Reason:         f.Reason,
			Transition:     result.Transitions[id],
			Acknowledged:   f.Acknowledged,
			Classification: f.Classification,
		})
	}

	return exp
}
