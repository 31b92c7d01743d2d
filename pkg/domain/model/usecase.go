package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

const DefaultMaxDepth = 1000000

var ptnCommitSHA = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)

type ScanInput struct {
	// RepoPath is a local checkout. It takes precedence over GitURL.
	RepoPath     string
	GitURL       string
	Branch       types.BranchName
	SinceCommit  types.CommitSHA
	MaxDepth     int
	PipelineMode bool
}

func (x *ScanInput) Validate() error {
	if x.MaxDepth <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "max depth must be positive", goerr.V("max_depth", x.MaxDepth))
	}
	if x.SinceCommit != "" && !ptnCommitSHA.MatchString(string(x.SinceCommit)) {
		return goerr.Wrap(types.ErrInvalidOption, "invalid since commit", goerr.V("since_commit", x.SinceCommit))
	}
	return nil
}

// Remote returns true if the repository must be cloned
func (x *ScanInput) Remote() bool {
	return x.RepoPath == "" && x.GitURL != ""
}
