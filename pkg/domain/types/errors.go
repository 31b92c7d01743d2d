package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption      = goerr.New("invalid option")
	ErrRepositoryNotFound = goerr.New("Unable to find a git repository.")
	ErrEmptyRepository    = goerr.New("Unable to clone the repository, is it a non-empty git repository?")
	ErrInvalidWhitelist   = goerr.New("invalid whitelist")
	ErrWhitelistLocked    = goerr.New("whitelist is locked by another process")
	ErrGateFailed         = goerr.New("outstanding secrets found")
)
