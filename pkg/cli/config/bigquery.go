package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID             types.GoogleProjectID
	datasetID             types.BQDatasetID
	tableID               types.BQTableID
	impersonateServiceAcc string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID to export scan results (optional)",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("LEAKGATE_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("LEAKGATE_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Value:       "scans",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("LEAKGATE_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery",
			Category:    "BigQuery",
			Destination: &x.impersonateServiceAcc,
			Sources:     cli.EnvVars("LEAKGATE_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
		slog.Any("impersonate", x.impersonateServiceAcc),
	)
}

// NewClient returns nil without error if BigQuery is not configured
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		if x.projectID != "" || x.datasetID != "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "both of bigquery-project-id and bigquery-dataset-id are required",
				goerr.V("projectID", x.projectID),
				goerr.V("datasetID", x.datasetID),
			)
		}
		return nil, nil
	}

	var options []option.ClientOption
	if x.impersonateServiceAcc != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAcc,
			Scopes: []string{
				"https://www.googleapis.com/auth/bigquery",
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create token source for impersonation",
				goerr.V("serviceAccount", x.impersonateServiceAcc),
			)
		}
		options = append(options, option.WithTokenSource(ts))
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
