package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/repository"
)

// Repository is an in-memory whitelist store
type Repository struct {
	mu       sync.RWMutex
	lock     sync.Mutex
	findings *model.FindingSet
	writes   int
}

var _ interfaces.WhitelistRepository = (*Repository)(nil)

// New creates an in-memory whitelist store. Given findings are the initial content.
func New(findings ...*model.Finding) *Repository {
	repo := &Repository{}
	if len(findings) > 0 {
		repo.findings = model.NewFindingSet(findings...)
	}
	return repo
}

func (r *Repository) Location() string {
	return "memory"
}

func (r *Repository) Read(ctx context.Context) (*model.FindingSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.findings == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "whitelist is not written yet")
	}
	return r.findings.Copy(), nil
}

func (r *Repository) Write(ctx context.Context, findings *model.FindingSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.findings = findings.Copy()
	r.writes++
	return nil
}

func (r *Repository) Lock(ctx context.Context) (func(), error) {
	if !r.lock.TryLock() {
		return nil, goerr.Wrap(types.ErrWhitelistLocked, "whitelist is used by another invocation")
	}
	return r.lock.Unlock, nil
}

// Writes returns how many times Write was called
func (r *Repository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}
