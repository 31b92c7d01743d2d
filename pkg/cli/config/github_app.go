package config

import (
	"log/slog"

	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

// GitHubApp holds credentials to clone private repositories given by --git_url
type GitHubApp struct {
	id         types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("LEAKGATE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("LEAKGATE_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("LEAKGATE_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

// Enabled returns true if any of GitHub App options is given
func (x *GitHubApp) Enabled() bool {
	return x.id != 0 || x.installID != 0 || x.privateKey != ""
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	return ghapp.New(x.id, x.installID, x.privateKey)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
