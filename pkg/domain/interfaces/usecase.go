package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/leakgate/pkg/domain/model"
)

type UseCase interface {
	Scan(ctx context.Context, input *model.ScanInput) (*model.Decision, error)
	Remediate(ctx context.Context, in io.Reader, out io.Writer) error
	Statistics(ctx context.Context) (*model.Statistics, error)
}
