package usecase

import (
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

// Export unexported functions for testing
var (
	RevisionPairsForTest               = revisionPairs
	NewDiffTrackerForTest              = newDiffTracker
	NewClassifierForTest               = newClassifier
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	ApplyAnswerForTest                 = applyAnswer
	RelativeToRootForTest              = relativeToRoot
)

func (x *diffTracker) MarkIfNew(id types.DiffID) bool {
	return x.markIfNew(id)
}

func (x *classifier) Classify(pair *model.RevisionPair, diffs []*model.FileDiff) *model.FindingSet {
	return x.classify(pair, diffs)
}

func (x *classifier) Excluded(path string) bool {
	return x.excluded(path)
}
