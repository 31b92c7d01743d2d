package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

func TestWhitelistDocument(t *testing.T) {
	t.Run("stored guid never overrides identity", func(t *testing.T) {
		doc := &model.WhitelistDocument{
			SchemaVersion: 1,
			Findings: []*model.FindingRecord{
				{SecretGUID: "bogus", CommitHash: "c1", Path: "a.txt", StringDetected: "s1"},
			},
		}
		set := gt.R1(doc.FindingSet()).NoError(t)
		gt.True(t, set.Has(model.NewFindingID("c1", "a.txt", "s1")))
		gt.False(t, set.Has("bogus"))
	})

	t.Run("records keep state", func(t *testing.T) {
		src := model.NewFindingSet(&model.Finding{
			CommitHash:     "c1",
			Path:           "a.txt",
			StringDetected: "s1",
			Acknowledged:   true,
			Classification: types.ClassificationRevoked,
		})
		doc := model.NewWhitelistDocument(src)
		gt.V(t, doc.SchemaVersion).Equal(model.WhitelistSchemaVersion)
		gt.V(t, doc.Findings[0].SecretGUID).Equal(model.NewFindingID("c1", "a.txt", "s1").String())

		set := gt.R1(doc.FindingSet()).NoError(t)
		f := set.Get(model.NewFindingID("c1", "a.txt", "s1"))
		gt.True(t, f.Acknowledged)
		gt.V(t, f.Classification).Equal(types.ClassificationRevoked)
	})

	t.Run("newer schema is rejected", func(t *testing.T) {
		doc := &model.WhitelistDocument{SchemaVersion: model.WhitelistSchemaVersion + 1}
		_, err := doc.FindingSet()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidWhitelist))
	})

	t.Run("record without content is rejected", func(t *testing.T) {
		doc := &model.WhitelistDocument{Findings: []*model.FindingRecord{{Path: "a.txt"}}}
		_, err := doc.FindingSet()
		gt.True(t, errors.Is(err, types.ErrInvalidWhitelist))
	})
}
