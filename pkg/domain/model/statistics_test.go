package model_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

func statisticsFixture() *model.FindingSet {
	// the first two entries share an identity
	return model.NewFindingSet(
		&model.Finding{
			Commit:         "fixing unicode commit message problem",
			CommitHash:     "7147cc7525c27d459154438e3284e03a73688907",
			Path:           "truffleHog.py",
			Reason:         types.ReasonHighEntropy,
			StringDetected: "1234567890abcdefABCDEF",
		},
		&model.Finding{
			Commit:         "fixing unicode commit message problem",
			CommitHash:     "7147cc7525c27d459154438e3284e03a73688907",
			Path:           "truffleHog.py",
			Reason:         types.ReasonHighEntropy,
			StringDetected: "1234567890abcdefABCDEF",
			Acknowledged:   true,
		},
		&model.Finding{
			Commit:         "fixing unicode commit message problem",
			CommitHash:     "7147cc7525c27d459152548e3284e03a73688907",
			Path:           "truffleHog.py",
			Reason:         types.ReasonHighEntropy,
			StringDetected: "1234567890abcdefABCDEF",
			Classification: types.ClassificationFalsePositive,
		},
	)
}

func TestStatistics(t *testing.T) {
	stats := model.NewStatistics(statisticsFixture())
	gt.V(t, stats.TotalStrings).Equal(2)
	gt.V(t, stats.UniqueStrings).Equal(1)
	gt.V(t, stats.Acknowledged).Equal(1)
	gt.V(t, stats.Unacknowledged).Equal(1)
	gt.V(t, stats.ByReason[types.ReasonHighEntropy]).Equal(2)
	gt.V(t, stats.ByClassification[types.ClassificationUnclassified]).Equal(1)
	gt.V(t, stats.ByClassification[types.ClassificationFalsePositive]).Equal(1)
}

func TestStatisticsRender(t *testing.T) {
	t.Run("console mode lists detected strings", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, model.NewStatistics(statisticsFixture()).Render(&buf, false))
		gt.S(t, buf.String()).Contains("Total Strings")
		gt.S(t, buf.String()).Contains("1234567890abcdefABCDEF")
	})

	t.Run("pipeline mode hides detected strings", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, model.NewStatistics(statisticsFixture()).Render(&buf, true))
		gt.S(t, buf.String()).Contains("Unique Strings")
		gt.S(t, buf.String()).NotContains("1234567890abcdefABCDEF")
	})
}
