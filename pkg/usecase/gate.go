package usecase

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/utils/errutil"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
)

// localFile is implemented by whitelist stores backed by a file in the working tree
type localFile interface {
	Path() string
}

func whitelistFile(store interfaces.WhitelistRepository) string {
	if lf, ok := store.(localFile); ok {
		return lf.Path()
	}
	return ""
}

// Gate decides whether the run passes. A failed interactive run also checks that the whitelist file is tracked by git.
// whitelistPath is empty when the whitelist is not a file.
func Gate(ctx context.Context, repo interfaces.GitRepository, outstanding *model.FindingSet, pipelineMode bool, whitelistPath string) *model.Decision {
	decision := &model.Decision{
		Outstanding:   outstanding.Sorted(),
		WhitelistPath: whitelistPath,
		PipelineMode:  pipelineMode,
	}

	if decision.Passed() || pipelineMode || whitelistPath == "" {
		return decision
	}

	rel, ok := relativeToRoot(repo.Root(), whitelistPath)
	if !ok {
		logging.From(ctx).Debug("whitelist is outside of the repository, skip tracking check",
			slog.String("whitelist", whitelistPath),
			slog.String("root", repo.Root()),
		)
		return decision
	}

	tracked, err := repo.IsTracked(ctx, rel)
	if err != nil {
		errutil.Warn(ctx, "failed to check tracking status of whitelist", err)
		return decision
	}
	decision.UntrackedWhitelist = !tracked

	return decision
}

func relativeToRoot(root, path string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
