package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/repository"
	"github.com/m-mizutani/leakgate/pkg/repository/memory"
	"github.com/m-mizutani/leakgate/pkg/repository/testhelper"
)

func TestMemoryWhitelistRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}

func TestMemoryNotFound(t *testing.T) {
	_, err := memory.New().Read(context.Background())
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestMemoryIsolation(t *testing.T) {
	ctx := context.Background()
	f := testhelper.NewFinding()
	repo := memory.New(f)

	got := gt.R1(repo.Read(ctx)).NoError(t)
	got.Get(f.ID()).Acknowledged = true

	again := gt.R1(repo.Read(ctx)).NoError(t)
	gt.False(t, again.Get(f.ID()).Acknowledged)

	gt.NoError(t, repo.Write(ctx, model.NewFindingSet()))
	gt.V(t, repo.Writes()).Equal(1)
}
