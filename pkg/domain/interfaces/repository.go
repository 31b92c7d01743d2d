package interfaces

import (
	"context"

	"github.com/m-mizutani/leakgate/pkg/domain/model"
)

//go:generate moq -out ../mock/whitelist_repository_mock.go -pkg mock . WhitelistRepository

// WhitelistRepository persists the whitelist. It is read once and written at most once per invocation.
type WhitelistRepository interface {
	Read(ctx context.Context) (*model.FindingSet, error)
	Write(ctx context.Context, findings *model.FindingSet) error
	// Lock acquires exclusive access to the store for the invocation
	Lock(ctx context.Context) (func(), error)
	// Location describes where the whitelist lives, e.g. a file path
	Location() string
}
