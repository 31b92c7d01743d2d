package usecase

import (
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

// Reconcile compares findings of this run with the stored whitelist. It is a pure function and does not modify its arguments.
//
//   - NEW: only in possible. Stored and outstanding.
//   - RESOLVED: only in known. Dropped from the whitelist.
//   - OUTSTANDING_UNACK: in both and not acknowledged. The stored record is kept and outstanding.
//   - OUTSTANDING_ACK: in both and acknowledged or classified as resolved. The stored record is kept.
func Reconcile(possible, known *model.FindingSet) *model.ScanResult {
	result := &model.ScanResult{
		PossibleSecrets:   possible,
		KnownSecrets:      known,
		ReconciledResults: model.NewFindingSet(),
		Outstanding:       model.NewFindingSet(),
		Transitions:       make(map[types.FindingID]types.Transition),
	}

	for _, f := range possible.Sorted() {
		id := f.ID()

		stored := known.Get(id)
		if stored == nil {
			result.ReconciledResults.Add(f.Copy())
			result.Outstanding.Add(f.Copy())
			result.Transitions[id] = types.TransitionNew
			continue
		}

		kept := stored.Copy()
		result.ReconciledResults.Add(kept)
		if kept.IsAcknowledged() {
			result.Transitions[id] = types.TransitionOutstandingAck
		} else {
			result.Outstanding.Add(kept.Copy())
			result.Transitions[id] = types.TransitionOutstandingUnack
		}
	}

	for _, id := range known.IDs() {
		if !possible.Has(id) {
			result.Transitions[id] = types.TransitionResolved
		}
	}

	return result
}
