package firestore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/repository"
	"github.com/m-mizutani/leakgate/pkg/repository/firestore"
	"github.com/m-mizutani/leakgate/pkg/repository/testhelper"
	"github.com/m-mizutani/leakgate/pkg/utils/testutil"
)

func TestFirestoreWhitelistRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID, "test-"+uuid.NewString())
	gt.NoError(t, err)

	t.Run("not found before first write", func(t *testing.T) {
		_, err := repo.Read(ctx)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	testhelper.TestAll(t, repo)
}

func TestValidateNamespace(t *testing.T) {
	gt.NoError(t, firestore.ValidateNamespace("my-org:my-repo"))
	gt.NoError(t, firestore.ValidateNamespace("default"))

	for _, ns := range []string{"", "a/b", ".", "..", "__reserved__"} {
		err := firestore.ValidateNamespace(ns)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	}
}
