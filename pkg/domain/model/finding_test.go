package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

func TestFindingID(t *testing.T) {
	t.Run("identity ignores state, branch and timestamp", func(t *testing.T) {
		f1 := &model.Finding{
			Branch:         "origin/main",
			CommitHash:     "7147cc7525c27d459154438e3284e03a73688907",
			Date:           "2016-12-31 23:15:08",
			Path:           "truffleHog.py",
			StringDetected: "1234567890abcdefABCDEF",
		}
		f2 := f1.Copy()
		f2.Branch = "origin/dev"
		f2.Acknowledged = true
		f2.Classification = types.ClassificationFalsePositive
		f2.Date = "2020-01-01 00:00:00"

		gt.V(t, f1.ID()).Equal(f2.ID())
	})

	t.Run("identity changes with content", func(t *testing.T) {
		base := &model.Finding{CommitHash: "aaaa", Path: "a.txt", StringDetected: "xyz"}
		gt.V(t, base.ID()).NotEqual((&model.Finding{CommitHash: "aaab", Path: "a.txt", StringDetected: "xyz"}).ID())
		gt.V(t, base.ID()).NotEqual((&model.Finding{CommitHash: "aaaa", Path: "b.txt", StringDetected: "xyz"}).ID())
		gt.V(t, base.ID()).NotEqual((&model.Finding{CommitHash: "aaaa", Path: "a.txt", StringDetected: "xyw"}).ID())
	})

	t.Run("identity is md5 of concatenated fields", func(t *testing.T) {
		// md5("abc" + "d" + "ef") == md5("abcdef")
		gt.V(t, model.NewFindingID("abc", "d", "ef")).Equal(types.FindingID("e80b5017098950fc58aad83c8c14978e"))
	})
}

func TestFindingAcknowledged(t *testing.T) {
	testCases := []struct {
		name     string
		finding  model.Finding
		expected bool
	}{
		{"default", model.Finding{}, false},
		{"acknowledged flag", model.Finding{Acknowledged: true}, true},
		{"unclassified", model.Finding{Classification: types.ClassificationUnclassified}, false},
		{"false positive", model.Finding{Classification: types.ClassificationFalsePositive}, true},
		{"revoked", model.Finding{Classification: types.ClassificationRevoked}, true},
		{"test data", model.Finding{Classification: types.ClassificationTestData}, true},
		{"true positive", model.Finding{Classification: types.ClassificationTruePositive}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, tc.finding.IsAcknowledged()).Equal(tc.expected)
		})
	}
}

func TestFindingSet(t *testing.T) {
	f1 := &model.Finding{Branch: "main", CommitHash: "c1", Path: "b.txt", StringDetected: "s1"}
	f1dup := &model.Finding{Branch: "dev", CommitHash: "c1", Path: "b.txt", StringDetected: "s1"}
	f2 := &model.Finding{Branch: "main", CommitHash: "c2", Path: "a.txt", StringDetected: "s2"}

	set := model.NewFindingSet(f1, f1dup, f2)
	gt.V(t, set.Len()).Equal(2)
	gt.True(t, set.Has(f1dup.ID()))
	gt.V(t, set.Get(f1.ID()).Branch).Equal(types.BranchName("main"))
	gt.False(t, set.Add(f1dup))

	sorted := set.Sorted()
	gt.A(t, sorted).Length(2)
	gt.V(t, sorted[0].Path).Equal("a.txt")

	other := model.NewFindingSet(&model.Finding{CommitHash: "c3", Path: "c.txt", StringDetected: "s3"})
	set.Merge(other)
	gt.V(t, set.Len()).Equal(3)

	var nilSet *model.FindingSet
	gt.V(t, nilSet.Len()).Equal(0)
	gt.False(t, nilSet.Has(f1.ID()))
}

func TestDiffInputNewFinding(t *testing.T) {
	input := &model.DiffInput{
		Text:   "+token",
		Path:   "config/app.yml",
		Branch: "origin/main",
		Commit: &model.Commit{
			Hash:        "0123456789abcdef0123456789abcdef01234567",
			Message:     "add\nconfig\n",
			AuthorEmail: "dev@example.com",
			When:        time.Date(2016, 12, 31, 23, 15, 8, 0, time.UTC),
		},
	}

	f := input.NewFinding(types.ReasonHighEntropy, types.ConfidenceLow, "abc")
	gt.V(t, f.Commit).Equal("addconfig")
	gt.V(t, f.Date).Equal("2016-12-31 23:15:08")
	gt.V(t, f.CommitAuthor).Equal("dev@example.com")
	gt.V(t, f.CommitHash).Equal(input.Commit.Hash)
	gt.V(t, f.Path).Equal("config/app.yml")
}

func TestRevisionPairDiffID(t *testing.T) {
	c1 := &model.Commit{Hash: "1111"}
	c2 := &model.Commit{Hash: "2222"}

	p1 := model.RevisionPair{Older: c1, Newer: c2, Branch: "main"}
	p2 := model.RevisionPair{Older: c1, Newer: c2, Branch: "dev"}
	p3 := model.RevisionPair{Newer: c1, Branch: "main"}

	gt.V(t, p1.DiffID()).Equal(p2.DiffID())
	gt.V(t, p1.DiffID()).NotEqual(p3.DiffID())
}
