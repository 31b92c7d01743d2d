package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/repository"
)

// New creates a Firestore-based whitelist store. namespace separates whitelists of different repositories in one database.
func New(ctx context.Context, projectID, databaseID, namespace string) (*Repository, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return nil, err
	}

	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Repository{
		client:    client,
		namespace: namespace,
	}, nil
}

// ValidateNamespace checks that namespace can be used as a single Firestore document ID
func ValidateNamespace(namespace string) error {
	if namespace == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "namespace is empty")
	}
	if strings.Contains(namespace, "/") {
		return goerr.Wrap(repository.ErrInvalidInput, "namespace contains invalid character '/'",
			goerr.V("namespace", namespace),
		)
	}
	if namespace == "." || namespace == ".." || strings.HasPrefix(namespace, "__") {
		return goerr.Wrap(repository.ErrInvalidInput, "namespace is reserved by Firestore",
			goerr.V("namespace", namespace),
		)
	}
	return nil
}
