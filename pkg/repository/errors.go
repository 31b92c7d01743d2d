package repository

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound is returned by Read when the store has never been written
	ErrNotFound     = goerr.New("whitelist not found")
	ErrInvalidInput = goerr.New("invalid input")
)
