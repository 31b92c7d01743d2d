package gitrepo

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
)

// Provider resolves repositories with go-git
type Provider struct{}

var _ interfaces.GitProvider = (*Provider)(nil)

func New() *Provider {
	return &Provider{}
}

// Open opens a local checkout. The path may point to a subdirectory of the working tree.
func (x *Provider) Open(ctx context.Context, path string) (interfaces.GitRepository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve repository path", goerr.V("path", path))
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryNotFound, err.Error(), goerr.V("path", absPath))
	}

	return newRepository(repo)
}

// Clone clones the remote repository into input.Dir with all remote branches
func (x *Provider) Clone(ctx context.Context, input *interfaces.CloneInput) (interfaces.GitRepository, error) {
	logging.From(ctx).Info("cloning repository", slog.String("url", input.URL), slog.String("dir", input.Dir))

	repo, err := git.PlainCloneContext(ctx, input.Dir, false, &git.CloneOptions{
		URL:  input.URL,
		Auth: input.Auth,
	})
	if err != nil {
		if errors.Is(err, transport.ErrEmptyRemoteRepository) {
			return nil, goerr.Wrap(types.ErrEmptyRepository, "remote has no commits", goerr.V("url", input.URL))
		}
		return nil, goerr.Wrap(err, "failed to clone repository", goerr.V("url", input.URL))
	}

	return newRepository(repo)
}
