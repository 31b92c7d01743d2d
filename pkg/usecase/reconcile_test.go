package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/usecase"
)

func newTestFinding(hash, path, detected string) *model.Finding {
	return &model.Finding{
		Branch:         "origin/main",
		Commit:         "commit " + hash,
		CommitHash:     types.CommitSHA(hash),
		Date:           "2024-01-01 00:00:00",
		Path:           path,
		Reason:         types.ReasonHighEntropy,
		StringDetected: types.SecretString(detected),
	}
}

func TestReconcile(t *testing.T) {
	fresh := newTestFinding("aaaa", "new.py", testToken)
	gone := newTestFinding("bbbb", "gone.py", testToken)
	unack := newTestFinding("cccc", "unack.py", testToken)
	ack := newTestFinding("dddd", "ack.py", testToken)
	fp := newTestFinding("eeee", "fp.py", testToken)
	tp := newTestFinding("ffff", "tp.py", testToken)

	storedUnack := unack.Copy()
	storedUnack.Branch = "origin/old-branch"
	storedAck := ack.Copy()
	storedAck.Acknowledged = true
	storedFP := fp.Copy()
	storedFP.Classification = types.ClassificationFalsePositive
	storedTP := tp.Copy()
	storedTP.Classification = types.ClassificationTruePositive

	possible := model.NewFindingSet(fresh, unack, ack, fp, tp)
	known := model.NewFindingSet(gone, storedUnack, storedAck, storedFP, storedTP)

	result := usecase.Reconcile(possible, known)

	t.Run("every identity gets exactly one transition", func(t *testing.T) {
		gt.V(t, len(result.Transitions)).Equal(6)
		gt.V(t, result.Transitions[fresh.ID()]).Equal(types.TransitionNew)
		gt.V(t, result.Transitions[gone.ID()]).Equal(types.TransitionResolved)
		gt.V(t, result.Transitions[unack.ID()]).Equal(types.TransitionOutstandingUnack)
		gt.V(t, result.Transitions[ack.ID()]).Equal(types.TransitionOutstandingAck)
		gt.V(t, result.Transitions[fp.ID()]).Equal(types.TransitionOutstandingAck)
		gt.V(t, result.Transitions[tp.ID()]).Equal(types.TransitionOutstandingUnack)
	})

	t.Run("reconciled results", func(t *testing.T) {
		gt.V(t, result.ReconciledResults.Len()).Equal(5)
		gt.False(t, result.ReconciledResults.Has(gone.ID()))
		// stored metadata wins over this run
		gt.V(t, result.ReconciledResults.Get(unack.ID()).Branch).Equal(types.BranchName("origin/old-branch"))
		gt.True(t, result.ReconciledResults.Get(ack.ID()).Acknowledged)
	})

	t.Run("outstanding", func(t *testing.T) {
		gt.V(t, result.Outstanding.Len()).Equal(3)
		gt.True(t, result.Outstanding.Has(fresh.ID()))
		gt.True(t, result.Outstanding.Has(unack.ID()))
		gt.True(t, result.Outstanding.Has(tp.ID()))
	})

	t.Run("outstanding is a subset of reconciled", func(t *testing.T) {
		for _, id := range result.Outstanding.IDs() {
			gt.True(t, result.ReconciledResults.Has(id))
		}
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		gt.V(t, possible.Len()).Equal(5)
		gt.V(t, known.Len()).Equal(5)
		gt.False(t, possible.Get(ack.ID()).Acknowledged)
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		again := usecase.Reconcile(possible, result.ReconciledResults)
		gt.V(t, again.ReconciledResults.IDs()).Equal(result.ReconciledResults.IDs())
		gt.V(t, again.Outstanding.IDs()).Equal(result.Outstanding.IDs())
		gt.V(t, again.Transitions[fresh.ID()]).Equal(types.TransitionOutstandingUnack)
	})

	t.Run("empty inputs", func(t *testing.T) {
		r := usecase.Reconcile(model.NewFindingSet(), model.NewFindingSet())
		gt.V(t, r.ReconciledResults.Len()).Equal(0)
		gt.V(t, r.Outstanding.Len()).Equal(0)
		gt.V(t, len(r.Transitions)).Equal(0)
	})
}
