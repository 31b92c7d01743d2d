package usecase

import (
	"sync"

	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

// diffTracker remembers diffs already classified in this run
type diffTracker struct {
	mu   sync.Mutex
	seen map[types.DiffID]struct{}
}

func newDiffTracker() *diffTracker {
	return &diffTracker{seen: make(map[types.DiffID]struct{})}
}

// markIfNew records id and returns true if it was not recorded yet
func (x *diffTracker) markIfNew(id types.DiffID) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.seen[id]; ok {
		return false
	}
	x.seen[id] = struct{}{}
	return true
}
