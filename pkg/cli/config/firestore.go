package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/leakgate/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
	namespace  string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID to store the whitelist (optional, the whitelist file is used if not set)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("LEAKGATE_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("LEAKGATE_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-namespace",
			Usage:       "Namespace of the whitelist in Firestore, e.g. owner:repo",
			Category:    "Firestore",
			Sources:     cli.EnvVars("LEAKGATE_FIRESTORE_NAMESPACE"),
			Value:       "default",
			Destination: &x.namespace,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("namespace", x.namespace),
	)
}

func (x *Firestore) NewRepository(ctx context.Context) (*firestore.Repository, error) {
	return firestore.New(ctx, x.projectID, x.databaseID, x.namespace)
}
