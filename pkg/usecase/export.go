package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
)

// exportScan appends one row of the scan to BigQuery. The table is created or its schema is extended as needed.
func exportScan(ctx context.Context, bq interfaces.BigQuery, exp *model.ScanExport) error {
	schema, err := createOrUpdateBigQueryTable(ctx, bq, exp)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, exp.Raw()); err != nil {
		return goerr.Wrap(err, "failed to insert scan export to BigQuery", goerr.V("scan_id", exp.ScanID))
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, exp *model.ScanExport) (bigquery.Schema, error) {
	schema, err := bqs.Infer(exp)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer scan export schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
