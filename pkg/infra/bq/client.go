package bq

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter"
	"cloud.google.com/go/bigquery/storage/managedwriter/adapt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/utils/safe"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Client writes scan exports to a single BigQuery table
type Client struct {
	bqClient *bigquery.Client
	mwClient *managedwriter.Client
	project  types.GoogleProjectID
	dataset  types.BQDatasetID
	tableID  types.BQTableID
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	mwClient, err := managedwriter.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery storage writer", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		mwClient: mwClient,
		project:  projectID,
		dataset:  datasetID,
		tableID:  tableID,
	}, nil
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset.String()).Table(x.tableID.String())
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return md, nil
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// Insert implements interfaces.BigQuery. data is encoded to JSON, so its JSON field names must match the schema.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any) error {
	msgDesc, descProto, err := buildDescriptor(schema)
	if err != nil {
		return err
	}

	row, err := encodeRow(msgDesc, data)
	if err != nil {
		return err
	}

	ms, err := x.mwClient.NewManagedStream(ctx,
		managedwriter.WithDestinationTable(
			managedwriter.TableParentFromParts(x.project.String(), x.dataset.String(), x.tableID.String()),
		),
		managedwriter.WithSchemaDescriptor(descProto),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create managed stream")
	}
	defer safe.Close(ms)

	result, err := ms.AppendRows(ctx, [][]byte{row})
	if err != nil {
		return goerr.Wrap(err, "failed to append rows")
	}
	if _, err := result.FullResponse(ctx); err != nil {
		return goerr.Wrap(err, "failed to get append result")
	}

	return nil
}

func buildDescriptor(schema bigquery.Schema) (protoreflect.MessageDescriptor, *descriptorpb.DescriptorProto, error) {
	storageSchema, err := adapt.BQSchemaToStorageTableSchema(schema)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema")
	}

	desc, err := adapt.StorageSchemaToProto2Descriptor(storageSchema, "root")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema to descriptor")
	}
	msgDesc, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, nil, goerr.New("adapted descriptor is not a message descriptor")
	}

	normalized, err := adapt.NormalizeDescriptor(msgDesc)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to normalize descriptor")
	}

	return msgDesc, normalized, nil
}

func encodeRow(msgDesc protoreflect.MessageDescriptor, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal row")
	}

	msg := dynamicpb.NewMessage(msgDesc)
	if err := protojson.Unmarshal(raw, msg); err != nil {
		return nil, goerr.Wrap(err, "failed to convert row to proto message", goerr.V("raw", string(raw)))
	}

	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal proto message")
	}
	return b, nil
}
