package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
)

// Client issues GitHub App installation tokens to clone private repositories over HTTPS
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
	transport http.RoundTripper
}

type Option func(*Client)

// WithTransport replaces the base transport used to call the GitHub API
func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:     appID,
		installID: installID,
		pem:       pem,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) installationTransport() (*ghinstallation.Transport, error) {
	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(x.installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("appID", x.appID),
			goerr.V("installID", x.installID),
		)
	}
	return itr, nil
}

// Token returns an installation access token
func (x *Client) Token(ctx context.Context) (string, error) {
	itr, err := x.installationTransport()
	if err != nil {
		return "", err
	}

	token, err := itr.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to issue installation token", goerr.V("installID", x.installID))
	}

	logging.From(ctx).Debug("issued installation token",
		slog.Any("appID", x.appID),
		slog.Any("installID", x.installID),
	)
	return token, nil
}

// CloneAuth returns HTTP basic auth for git clone with the installation token
func (x *Client) CloneAuth(ctx context.Context) (transport.AuthMethod, error) {
	token, err := x.Token(ctx)
	if err != nil {
		return nil, err
	}
	return &githttp.BasicAuth{
		Username: "x-access-token",
		Password: token,
	}, nil
}
