package infra

import (
	"github.com/m-mizutani/leakgate/pkg/detector"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/infra/gitrepo"
)

type Clients struct {
	gitProvider interfaces.GitProvider
	cloneAuth   interfaces.CloneAuthenticator
	bqClient    interfaces.BigQuery
	whitelist   interfaces.WhitelistRepository
	detectors   detector.Set
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		gitProvider: gitrepo.New(),
		detectors:   detector.Set{detector.NewEntropy(), detector.NewPattern()},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitProvider() interfaces.GitProvider {
	return x.gitProvider
}
func (x *Clients) CloneAuth() interfaces.CloneAuthenticator {
	return x.cloneAuth
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Whitelist() interfaces.WhitelistRepository {
	return x.whitelist
}
func (x *Clients) Detectors() detector.Set {
	return x.detectors
}

func WithGitProvider(provider interfaces.GitProvider) Option {
	return func(x *Clients) {
		x.gitProvider = provider
	}
}

// WithCloneAuth sets credentials used when the repository is cloned from a URL
func WithCloneAuth(auth interfaces.CloneAuthenticator) Option {
	return func(x *Clients) {
		x.cloneAuth = auth
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithWhitelist(repo interfaces.WhitelistRepository) Option {
	return func(x *Clients) {
		x.whitelist = repo
	}
}

// WithDetectors replaces the default detector set (entropy and pattern)
func WithDetectors(detectors ...interfaces.Detector) Option {
	return func(x *Clients) {
		x.detectors = detectors
	}
}
