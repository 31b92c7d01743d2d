package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/repository"
	"github.com/m-mizutani/leakgate/pkg/utils/errutil"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
	"github.com/m-mizutani/leakgate/pkg/utils/safe"
)

// Scan walks the whole history of the repository, reconciles findings with the whitelist and decides the gate.
// A returned error means the run could not be completed; a failed gate is reported by the Decision.
func (x *UseCase) Scan(ctx context.Context, input *model.ScanInput) (*model.Decision, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	store := x.clients.Whitelist()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "whitelist store is not configured")
	}

	scanID, ctx := logging.CtxScanID(ctx)
	logger := logging.From(ctx).With(slog.String("scan_id", scanID.String()))
	ctx = logging.With(ctx, logger)

	repo, cleanup, err := x.openRepository(ctx, input)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	unlock, err := store.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	known := readWhitelist(ctx, store)

	wlPath := whitelistFile(store)
	cls := newClassifier(x.clients.Detectors(), wlPath, x.excludes)

	logger.Info("scanning history",
		slog.String("root", repo.Root()),
		slog.String("branch", input.Branch.String()),
		slog.String("since", input.SinceCommit.String()),
		slog.Int("max_depth", input.MaxDepth),
		slog.Any("detectors", x.clients.Detectors().Names()),
	)

	possible, err := x.walkHistory(ctx, repo, input, cls)
	if err != nil {
		return nil, err
	}

	result := Reconcile(possible, known)
	result.ScanID = scanID

	if err := store.Write(ctx, result.ReconciledResults); err != nil {
		errutil.Warn(ctx, "failed to write whitelist", err)
	}

	decision := Gate(ctx, repo, result.Outstanding, input.PipelineMode, wlPath)

	if x.clients.BigQuery() != nil {
		exp := model.NewScanExport(input, result, decision, logging.CtxTime(ctx))
		if err := exportScan(ctx, x.clients.BigQuery(), exp); err != nil {
			errutil.Warn(ctx, "failed to export scan result", err)
		}
	}

	counts := result.CountTransitions()
	logger.Info("scan finished",
		slog.Int("possible", result.PossibleSecrets.Len()),
		slog.Int("known", result.KnownSecrets.Len()),
		slog.Int("new", counts[types.TransitionNew]),
		slog.Int("resolved", counts[types.TransitionResolved]),
		slog.Int("outstanding", result.Outstanding.Len()),
		slog.Bool("passed", decision.Passed()),
	)

	if err := renderReport(x.output, result, decision); err != nil {
		errutil.Warn(ctx, "failed to write report", err)
	}

	return decision, nil
}

// openRepository opens a local checkout or clones the remote into a temporary directory removed by cleanup
func (x *UseCase) openRepository(ctx context.Context, input *model.ScanInput) (interfaces.GitRepository, func(), error) {
	provider := x.clients.GitProvider()

	if !input.Remote() {
		path := input.RepoPath
		if path == "" {
			path = "."
		}
		repo, err := provider.Open(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}

	tmpDir, err := os.MkdirTemp("", "leakgate.*")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create temp directory for clone")
	}
	cleanup := func() { safe.RemoveAll(tmpDir) }

	cloneInput := &interfaces.CloneInput{
		URL: input.GitURL,
		Dir: tmpDir,
	}
	if auth := x.clients.CloneAuth(); auth != nil {
		method, err := auth.CloneAuth(ctx)
		if err != nil {
			cleanup()
			return nil, nil, goerr.Wrap(err, "failed to get clone credentials", goerr.V("url", input.GitURL))
		}
		cloneInput.Auth = method
	}

	repo, err := provider.Clone(ctx, cloneInput)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

// readWhitelist never fails. A missing or broken whitelist is treated as the first run.
func readWhitelist(ctx context.Context, store interfaces.WhitelistRepository) *model.FindingSet {
	known, err := store.Read(ctx)
	if err == nil {
		return known
	}

	if errors.Is(err, repository.ErrNotFound) {
		logging.From(ctx).Info("whitelist not found, starting with an empty whitelist",
			slog.String("location", store.Location()),
		)
	} else {
		errutil.Warn(ctx, "failed to read whitelist, starting with an empty whitelist", err)
	}
	return model.NewFindingSet()
}
