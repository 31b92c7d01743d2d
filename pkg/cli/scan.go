package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/leakgate/pkg/cli/config"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/infra"
	"github.com/m-mizutani/leakgate/pkg/usecase"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// scanOptions is mounted on the root command. Root flags are inherited by sub commands, so stats reuses the whitelist options.
type scanOptions struct {
	repoPath     string
	gitURL       string
	remediate    bool
	pipelineMode bool
	sinceCommit  string
	maxDepth     int64
	branch       string

	detector  config.Detector
	whitelist config.Whitelist
	firestore config.Firestore
	githubApp config.GitHubApp
	bigQuery  config.BigQuery
}

func (x *scanOptions) Flags() []cli.Flag {
	return slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "repo_path",
			Usage:       "Path to local git repository (default: current directory unless --git_url is given)",
			Sources:     cli.EnvVars("LEAKGATE_REPO_PATH"),
			Destination: &x.repoPath,
		},
		&cli.StringFlag{
			Name:        "git_url",
			Usage:       "URL of git repository to clone and scan",
			Sources:     cli.EnvVars("LEAKGATE_GIT_URL"),
			Destination: &x.gitURL,
		},
		&cli.BoolFlag{
			Name:        "remediate",
			Usage:       "Triage unacknowledged whitelist entries interactively without scanning",
			Destination: &x.remediate,
		},
		&cli.BoolFlag{
			Name:        "pipeline_mode",
			Usage:       "Run in CI pipeline. Detected strings are masked in the report",
			Sources:     cli.EnvVars("LEAKGATE_PIPELINE_MODE"),
			Destination: &x.pipelineMode,
		},
		&cli.StringFlag{
			Name:        "since_commit",
			Usage:       "Stop scanning at this commit (full hash or a prefix of at least 7 characters)",
			Sources:     cli.EnvVars("LEAKGATE_SINCE_COMMIT"),
			Destination: &x.sinceCommit,
		},
		&cli.Int64Flag{
			Name:        "max_depth",
			Usage:       "Maximum number of commits to walk per branch",
			Sources:     cli.EnvVars("LEAKGATE_MAX_DEPTH"),
			Value:       model.DefaultMaxDepth,
			Destination: &x.maxDepth,
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Scan only this branch",
			Sources:     cli.EnvVars("LEAKGATE_BRANCH"),
			Destination: &x.branch,
		},
	},
		x.detector.Flags(),
		x.whitelist.Flags(),
		x.firestore.Flags(),
		x.githubApp.Flags(),
		x.bigQuery.Flags(),
	)
}

func (x *scanOptions) localRepoPath() string {
	if x.repoPath == "" && x.gitURL == "" {
		return "."
	}
	return x.repoPath
}

func (x *scanOptions) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("repo_path", x.localRepoPath()),
		slog.String("git_url", x.gitURL),
		slog.Bool("remediate", x.remediate),
		slog.Bool("pipeline_mode", x.pipelineMode),
		slog.String("since_commit", x.sinceCommit),
		slog.Int64("max_depth", x.maxDepth),
		slog.String("branch", x.branch),
		slog.Any("detector", &x.detector),
		slog.Any("whitelist", &x.whitelist),
		slog.Any("firestore", &x.firestore),
		slog.Any("github_app", x.githubApp),
		slog.Any("bigquery", &x.bigQuery),
	)
}

// newWhitelistRepository returns the Firestore store if configured, otherwise the whitelist file
func (x *scanOptions) newWhitelistRepository(ctx context.Context) (interfaces.WhitelistRepository, error) {
	if x.firestore.Enabled() {
		repo, err := x.firestore.NewRepository(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Firestore repository")
		}
		return repo, nil
	}
	return x.whitelist.NewRepository(x.localRepoPath()), nil
}

func (x *CLI) runScan(ctx context.Context, opt *scanOptions) error {
	logging.Default().Info("Starting leakgate", slog.Any("options", opt))

	store, err := opt.newWhitelistRepository(ctx)
	if err != nil {
		return err
	}

	detectors, err := opt.detector.Detectors()
	if err != nil {
		return err
	}

	clientOpts := []infra.Option{
		infra.WithWhitelist(store),
		infra.WithDetectors(detectors...),
	}

	if opt.githubApp.Enabled() {
		auth, err := opt.githubApp.New()
		if err != nil {
			return goerr.Wrap(err, "failed to create GitHub App client")
		}
		clientOpts = append(clientOpts, infra.WithCloneAuth(auth))
	}

	bqClient, err := opt.bigQuery.NewClient(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to create BigQuery client")
	}
	if bqClient != nil {
		clientOpts = append(clientOpts, infra.WithBigQuery(bqClient))
	}

	uc := usecase.New(infra.New(clientOpts...),
		usecase.WithOutput(x.out),
		usecase.WithExcludes(opt.detector.Excludes()...),
	)

	if opt.remediate {
		return uc.Remediate(ctx, x.in, x.out)
	}

	input := &model.ScanInput{
		RepoPath:     opt.localRepoPath(),
		GitURL:       opt.gitURL,
		Branch:       types.BranchName(opt.branch),
		SinceCommit:  types.CommitSHA(opt.sinceCommit),
		MaxDepth:     int(opt.maxDepth),
		PipelineMode: opt.pipelineMode,
	}

	decision, err := uc.Scan(ctx, input)
	if err != nil {
		return err
	}

	if !decision.Passed() {
		return goerr.Wrap(types.ErrGateFailed, "scan gate failed",
			goerr.V("outstanding", len(decision.Outstanding)),
			goerr.V("untracked_whitelist", decision.UntrackedWhitelist),
		)
	}
	return nil
}
