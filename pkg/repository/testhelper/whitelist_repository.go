package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

// TestAll runs all test cases for WhitelistRepository
// This is the main entry point for testing any WhitelistRepository implementation
func TestAll(t *testing.T, repo interfaces.WhitelistRepository) {
	t.Run("RoundTrip", func(t *testing.T) {
		TestRoundTrip(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("Lock", func(t *testing.T) {
		TestLock(t, repo)
	})
}

// NewFinding returns a finding with unique content
func NewFinding() *model.Finding {
	id := uuid.New().String()
	return &model.Finding{
		Branch:         "origin/main",
		Commit:         "add config " + id[:8],
		CommitHash:     types.CommitSHA(fmt.Sprintf("%040x", uuid.New().ID())),
		CommitAuthor:   "test@example.com",
		Date:           "2024-01-01 00:00:00",
		Path:           "config/" + id[:8] + ".py",
		Reason:         types.ReasonHighEntropy,
		Confidence:     types.ConfidenceLow,
		StringDetected: types.SecretString("c2VjcmV0" + id),
	}
}

// TestRoundTrip checks that written findings are read back equal by identity and metadata
func TestRoundTrip(t *testing.T, repo interfaces.WhitelistRepository) {
	ctx := context.Background()

	f1 := NewFinding()
	f2 := NewFinding()
	f2.Acknowledged = true
	f3 := NewFinding()
	f3.Classification = types.ClassificationFalsePositive

	gt.NoError(t, repo.Write(ctx, model.NewFindingSet(f1, f2, f3)))

	got, err := repo.Read(ctx)
	gt.NoError(t, err)
	gt.V(t, got.Len()).Equal(3)

	for _, want := range []*model.Finding{f1, f2, f3} {
		actual := got.Get(want.ID())
		gt.True(t, actual != nil)
		gt.V(t, actual.Branch).Equal(want.Branch)
		gt.V(t, actual.Commit).Equal(want.Commit)
		gt.V(t, actual.CommitAuthor).Equal(want.CommitAuthor)
		gt.V(t, actual.Date).Equal(want.Date)
		gt.V(t, actual.Reason).Equal(want.Reason)
		gt.V(t, actual.Confidence).Equal(want.Confidence)
		gt.V(t, actual.Acknowledged).Equal(want.Acknowledged)
		gt.V(t, actual.Classification).Equal(want.Classification)
	}
	gt.True(t, got.Get(f3.ID()).IsAcknowledged())
}

// TestOverwrite checks that a write replaces the whole whitelist
func TestOverwrite(t *testing.T, repo interfaces.WhitelistRepository) {
	ctx := context.Background()

	f1 := NewFinding()
	f2 := NewFinding()
	gt.NoError(t, repo.Write(ctx, model.NewFindingSet(f1, f2)))

	f1.Acknowledged = true
	gt.NoError(t, repo.Write(ctx, model.NewFindingSet(f1)))

	got, err := repo.Read(ctx)
	gt.NoError(t, err)
	gt.V(t, got.Len()).Equal(1)
	gt.True(t, got.Has(f1.ID()))
	gt.False(t, got.Has(f2.ID()))
	gt.True(t, got.Get(f1.ID()).Acknowledged)

	t.Run("empty set", func(t *testing.T) {
		gt.NoError(t, repo.Write(ctx, model.NewFindingSet()))
		got, err := repo.Read(ctx)
		gt.NoError(t, err)
		gt.V(t, got.Len()).Equal(0)
	})
}

// TestLock checks that the store can be locked by only one holder at a time
func TestLock(t *testing.T, repo interfaces.WhitelistRepository) {
	ctx := context.Background()

	unlock, err := repo.Lock(ctx)
	gt.NoError(t, err)

	_, err = repo.Lock(ctx)
	gt.True(t, errors.Is(err, types.ErrWhitelistLocked))

	unlock()

	unlock2, err := repo.Lock(ctx)
	gt.NoError(t, err)
	unlock2()
}
