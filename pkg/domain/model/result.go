package model

import (
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

// ScanResult is the aggregate of one invocation
type ScanResult struct {
	ScanID            types.ScanID
	PossibleSecrets   *FindingSet
	KnownSecrets      *FindingSet
	ReconciledResults *FindingSet
	Outstanding       *FindingSet
	Transitions       map[types.FindingID]types.Transition
}

// CountTransitions returns the number of identities per transition
func (x *ScanResult) CountTransitions() map[types.Transition]int {
	counts := map[types.Transition]int{}
	for _, t := range x.Transitions {
		counts[t]++
	}
	return counts
}

// Decision is the final verdict of a run. It is converted to a process exit status only by main.
type Decision struct {
	Outstanding        []*Finding
	UntrackedWhitelist bool
	WhitelistPath      string
	PipelineMode       bool
}

func (x *Decision) Passed() bool {
	return len(x.Outstanding) == 0 && !x.UntrackedWhitelist
}

func (x *Decision) ExitCode() int {
	if x.Passed() {
		return 0
	}
	return 1
}

// Messages returns blocking messages of the decision
func (x *Decision) Messages() []string {
	var msgs []string
	if len(x.Outstanding) > 0 {
		msgs = append(msgs, "Outstanding secrets found, acknowledge or remove them in the whitelist")
	}
	if x.UntrackedWhitelist {
		msgs = append(msgs, "Whitelist file "+x.WhitelistPath+" is not tracked by git, add and commit it")
	}
	return msgs
}
