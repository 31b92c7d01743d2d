package usecase

import (
	"io"
	"os"

	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/infra"
)

type UseCase struct {
	clients  *infra.Clients
	output   io.Writer
	excludes []string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithOutput sets the writer of the human readable report. Default is stdout.
func WithOutput(w io.Writer) Option {
	return func(x *UseCase) {
		x.output = w
	}
}

// WithExcludes adds path patterns in gitignore syntax that are never scanned
func WithExcludes(patterns ...string) Option {
	return func(x *UseCase) {
		x.excludes = append(x.excludes, patterns...)
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		output:  os.Stdout,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
