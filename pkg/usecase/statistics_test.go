package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/domain/mock"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/infra"
	"github.com/m-mizutani/leakgate/pkg/repository/memory"
	"github.com/m-mizutani/leakgate/pkg/usecase"
)

func TestStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("summarize stored whitelist", func(t *testing.T) {
		f1 := newTestFinding("aaaa", "a.py", testToken)
		f2 := newTestFinding("bbbb", "b.py", testToken)
		f2.Acknowledged = true
		f3 := newTestFinding("cccc", "c.py", testToken2)

		uc := usecase.New(infra.New(infra.WithWhitelist(memory.New(f1, f2, f3))))
		stats := gt.R1(uc.Statistics(ctx)).NoError(t)
		gt.V(t, stats.TotalStrings).Equal(3)
		gt.V(t, stats.UniqueStrings).Equal(2)
		gt.V(t, stats.Acknowledged).Equal(1)
		gt.V(t, stats.Unacknowledged).Equal(2)
	})

	t.Run("missing whitelist is empty", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithWhitelist(memory.New())))
		stats := gt.R1(uc.Statistics(ctx)).NoError(t)
		gt.V(t, stats.TotalStrings).Equal(0)
	})

	t.Run("broken whitelist is an error", func(t *testing.T) {
		store := &mock.WhitelistRepositoryMock{
			ReadFunc: func(ctx context.Context) (*model.FindingSet, error) {
				return nil, types.ErrInvalidWhitelist
			},
		}
		uc := usecase.New(infra.New(infra.WithWhitelist(store)))
		_, err := uc.Statistics(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidWhitelist))
	})

	t.Run("whitelist is required", func(t *testing.T) {
		_, err := usecase.New(infra.New()).Statistics(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
