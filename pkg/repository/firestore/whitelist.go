package firestore

import (
	"context"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
	"github.com/m-mizutani/leakgate/pkg/repository"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionWhitelist = "whitelist"
	collectionFinding   = "finding"
	collectionLock      = "lock"
	lockDocID           = "invocation"
	batchSize           = 500
)

// Repository stores the whitelist as whitelist/<namespace>/finding/<secretGuid>
type Repository struct {
	client    *firestore.Client
	namespace string
}

var _ interfaces.WhitelistRepository = (*Repository)(nil)

type namespaceDoc struct {
	SchemaVersion int       `firestore:"schemaVersion"`
	UpdatedAt     time.Time `firestore:"updatedAt"`
}

type lockDoc struct {
	Host      string    `firestore:"host"`
	PID       int       `firestore:"pid"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func (r *Repository) root() *firestore.DocumentRef {
	return r.client.Collection(collectionWhitelist).Doc(r.namespace)
}

func (r *Repository) Location() string {
	return "firestore://" + collectionWhitelist + "/" + r.namespace
}

func (r *Repository) Read(ctx context.Context) (*model.FindingSet, error) {
	snap, err := r.root().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "whitelist not found",
				goerr.V("namespace", r.namespace),
			)
		}
		return nil, goerr.Wrap(err, "failed to get whitelist", goerr.V("namespace", r.namespace))
	}

	var meta namespaceDoc
	if err := snap.DataTo(&meta); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidWhitelist, "failed to decode whitelist metadata",
			goerr.V("namespace", r.namespace),
			goerr.V("cause", err.Error()),
		)
	}

	doc := &model.WhitelistDocument{SchemaVersion: meta.SchemaVersion}

	iter := r.root().Collection(collectionFinding).Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate whitelist findings",
				goerr.V("namespace", r.namespace),
			)
		}

		var record model.FindingRecord
		if err := snap.DataTo(&record); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidWhitelist, "failed to decode finding",
				goerr.V("namespace", r.namespace),
				goerr.V("docID", snap.Ref.ID),
				goerr.V("cause", err.Error()),
			)
		}
		doc.Findings = append(doc.Findings, &record)
	}

	return doc.FindingSet()
}

// Write replaces stored findings with the given set. Documents of identities absent from the set are deleted.
func (r *Repository) Write(ctx context.Context, findings *model.FindingSet) error {
	doc := model.NewWhitelistDocument(findings)

	keep := make(map[string]struct{}, len(doc.Findings))
	for _, record := range doc.Findings {
		keep[record.SecretGUID] = struct{}{}
	}

	var stale []*firestore.DocumentRef
	refs := r.root().Collection(collectionFinding).DocumentRefs(ctx)
	for {
		ref, err := refs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to list whitelist findings", goerr.V("namespace", r.namespace))
		}
		if _, ok := keep[ref.ID]; !ok {
			stale = append(stale, ref)
		}
	}

	type op struct {
		ref    *firestore.DocumentRef
		record *model.FindingRecord
	}
	ops := make([]op, 0, len(doc.Findings)+len(stale))
	for _, record := range doc.Findings {
		ops = append(ops, op{ref: r.root().Collection(collectionFinding).Doc(record.SecretGUID), record: record})
	}
	for _, ref := range stale {
		ops = append(ops, op{ref: ref})
	}

	// Process in batches of 500 (Firestore limit)
	for i := 0; i < len(ops); i += batchSize {
		end := i + batchSize
		if end > len(ops) {
			end = len(ops)
		}

		batch := r.client.Batch()
		for _, o := range ops[i:end] {
			if o.record != nil {
				batch.Set(o.ref, o.record)
			} else {
				batch.Delete(o.ref)
			}
		}

		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to write whitelist findings",
				goerr.V("namespace", r.namespace),
				goerr.V("batchStart", i),
				goerr.V("batchEnd", end),
			)
		}
	}

	meta := namespaceDoc{
		SchemaVersion: doc.SchemaVersion,
		UpdatedAt:     time.Now().UTC(),
	}
	if _, err := r.root().Set(ctx, meta); err != nil {
		return goerr.Wrap(err, "failed to write whitelist metadata", goerr.V("namespace", r.namespace))
	}

	logging.From(ctx).Debug("whitelist written to firestore",
		slog.String("namespace", r.namespace),
		slog.Int("findings", len(doc.Findings)),
		slog.Int("deleted", len(stale)),
	)

	return nil
}

// Lock creates a lock document. An existing lock document means another invocation holds the whitelist.
func (r *Repository) Lock(ctx context.Context) (func(), error) {
	ref := r.root().Collection(collectionLock).Doc(lockDocID)

	host, _ := os.Hostname()
	lock := lockDoc{
		Host:      host,
		PID:       os.Getpid(),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := ref.Create(ctx, lock); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(types.ErrWhitelistLocked, "whitelist is used by another invocation",
				goerr.V("namespace", r.namespace),
			)
		}
		return nil, goerr.Wrap(err, "failed to lock whitelist", goerr.V("namespace", r.namespace))
	}

	return func() {
		// The caller's context may be already cancelled when unlocking
		if _, err := ref.Delete(context.Background()); err != nil {
			logging.Default().Warn("failed to unlock whitelist",
				slog.String("namespace", r.namespace),
				slog.Any("error", err),
			)
		}
	}, nil
}
