package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/leakgate/pkg/infra"
	"github.com/m-mizutani/leakgate/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with default clients", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.True(t, uc != nil)
	})
}
