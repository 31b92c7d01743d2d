package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
)

// revisionPairs builds adjacent pairs of commits ordered newest first.
// The walk stops at the since commit. If since is empty or not found, the oldest commit is paired with the empty tree.
func revisionPairs(commits []*model.Commit, branch types.BranchName, since types.CommitSHA) []*model.RevisionPair {
	var pairs []*model.RevisionPair
	for i, c := range commits {
		if since != "" && matchCommit(c.Hash, since) {
			return pairs
		}
		if i+1 < len(commits) {
			pairs = append(pairs, &model.RevisionPair{Older: commits[i+1], Newer: c, Branch: branch})
		}
	}

	if len(commits) > 0 {
		pairs = append(pairs, &model.RevisionPair{Older: nil, Newer: commits[len(commits)-1], Branch: branch})
	}
	return pairs
}

// matchCommit accepts both a full hash and an abbreviated one
func matchCommit(hash, since types.CommitSHA) bool {
	return strings.HasPrefix(strings.ToLower(string(hash)), strings.ToLower(string(since)))
}

// selectBranches returns the branches to walk. A branch filter is used as is.
func selectBranches(ctx context.Context, repo interfaces.GitRepository, filter types.BranchName) ([]types.BranchName, error) {
	if filter != "" {
		return []types.BranchName{filter}, nil
	}

	branches, err := repo.Branches(ctx)
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return nil, goerr.Wrap(types.ErrEmptyRepository, "no branch found", goerr.V("root", repo.Root()))
	}
	return branches, nil
}

// walkHistory classifies every new diff of every selected branch and returns the union of findings
func (x *UseCase) walkHistory(ctx context.Context, repo interfaces.GitRepository, input *model.ScanInput, cls *classifier) (*model.FindingSet, error) {
	logger := logging.From(ctx)

	branches, err := selectBranches(ctx, repo, input.Branch)
	if err != nil {
		return nil, err
	}

	tracker := newDiffTracker()
	possible := model.NewFindingSet()

	for _, branch := range branches {
		commits, err := repo.Commits(ctx, branch, input.MaxDepth)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to walk branch", goerr.V("branch", branch))
		}

		pairs := revisionPairs(commits, branch, input.SinceCommit)
		var scanned int
		for _, pair := range pairs {
			if err := ctx.Err(); err != nil {
				return nil, goerr.Wrap(err, "scan is interrupted", goerr.V("branch", branch))
			}
			if !tracker.markIfNew(pair.DiffID()) {
				continue
			}

			diffs, err := repo.Diff(ctx, pair.Older, pair.Newer)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to get diff",
					goerr.V("branch", branch),
					goerr.V("commit", pair.Newer.Hash),
				)
			}

			possible.Merge(cls.classify(pair, diffs))
			scanned++
		}

		logger.Debug("branch walked",
			slog.String("branch", branch.String()),
			slog.Int("commits", len(commits)),
			slog.Int("pairs", len(pairs)),
			slog.Int("scanned", scanned),
		)
	}

	return possible, nil
}
