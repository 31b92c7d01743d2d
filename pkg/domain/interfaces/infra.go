package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitProvider GitRepository Detector CloneAuthenticator

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitProvider resolves a repository handle from a local path or a remote URL
type GitProvider interface {
	Open(ctx context.Context, path string) (GitRepository, error)
	Clone(ctx context.Context, input *CloneInput) (GitRepository, error)
}

type CloneInput struct {
	URL  string
	Dir  string
	Auth transport.AuthMethod
}

// CloneAuthenticator provides credentials to clone private repositories
type CloneAuthenticator interface {
	CloneAuth(ctx context.Context) (transport.AuthMethod, error)
}

type GitRepository interface {
	// Root returns the working tree root of the repository
	Root() string
	Branches(ctx context.Context) ([]types.BranchName, error)
	// Commits returns commits reachable from the branch, newest first, at most maxDepth
	Commits(ctx context.Context, branch types.BranchName, maxDepth int) ([]*model.Commit, error)
	// Diff returns changed files from older to newer. older nil means the empty tree.
	Diff(ctx context.Context, older, newer *model.Commit) ([]*model.FileDiff, error)
	// IsTracked returns true if the path relative to Root is in the index
	IsTracked(ctx context.Context, path string) (bool, error)
}

// Detector is a pure function from a changed file to findings
type Detector interface {
	Name() types.DetectorName
	Detect(input *model.DiffInput) []*model.Finding
}
