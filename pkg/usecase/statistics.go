package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/repository"
)

// Statistics summarizes the stored whitelist. A whitelist that does not exist yet is empty.
func (x *UseCase) Statistics(ctx context.Context) (*model.Statistics, error) {
	store := x.clients.Whitelist()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "whitelist store is not configured")
	}

	findings, err := store.Read(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		findings = model.NewFindingSet()
	}

	return model.NewStatistics(findings), nil
}
