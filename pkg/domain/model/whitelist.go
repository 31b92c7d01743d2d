package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

const WhitelistSchemaVersion = 1

// WhitelistDocument is the persisted layout of the whitelist
type WhitelistDocument struct {
	SchemaVersion int              `json:"schemaVersion" yaml:"schemaVersion"`
	Findings      []*FindingRecord `json:"findings" yaml:"findings"`
}

// FindingRecord is the persisted form of a finding. secretGuid is written for readers and never trusted on read.
type FindingRecord struct {
	SecretGUID     string `json:"secretGuid" yaml:"secretGuid" firestore:"secretGuid"`
	Branch         string `json:"branch" yaml:"branch" firestore:"branch"`
	Commit         string `json:"commit" yaml:"commit" firestore:"commit"`
	CommitHash     string `json:"commitHash" yaml:"commitHash" firestore:"commitHash"`
	CommitAuthor   string `json:"commitAuthor,omitempty" yaml:"commitAuthor,omitempty" firestore:"commitAuthor"`
	Confidence     string `json:"confidence,omitempty" yaml:"confidence,omitempty" firestore:"confidence"`
	Date           string `json:"date" yaml:"date" firestore:"date"`
	Path           string `json:"path" yaml:"path" firestore:"path"`
	Reason         string `json:"reason" yaml:"reason" firestore:"reason"`
	StringDetected string `json:"stringDetected" yaml:"stringDetected" firestore:"stringDetected"`
	Acknowledged   bool   `json:"acknowledged" yaml:"acknowledged" firestore:"acknowledged"`
	Classification string `json:"classification,omitempty" yaml:"classification,omitempty" firestore:"classification"`
}

func NewFindingRecord(f *Finding) *FindingRecord {
	return &FindingRecord{
		SecretGUID:     f.ID().String(),
		Branch:         f.Branch.String(),
		Commit:         f.Commit,
		CommitHash:     f.CommitHash.String(),
		CommitAuthor:   f.CommitAuthor,
		Confidence:     string(f.Confidence),
		Date:           f.Date,
		Path:           f.Path,
		Reason:         string(f.Reason),
		StringDetected: string(f.StringDetected),
		Acknowledged:   f.Acknowledged,
		Classification: string(f.Classification),
	}
}

func (x *FindingRecord) Finding() *Finding {
	return &Finding{
		Branch:         types.BranchName(x.Branch),
		Commit:         x.Commit,
		CommitHash:     types.CommitSHA(x.CommitHash),
		CommitAuthor:   x.CommitAuthor,
		Confidence:     types.Confidence(x.Confidence),
		Date:           x.Date,
		Path:           x.Path,
		Reason:         types.Reason(x.Reason),
		StringDetected: types.SecretString(x.StringDetected),
		Acknowledged:   x.Acknowledged,
		Classification: types.Classification(x.Classification),
	}
}

// NewWhitelistDocument converts the set into the persisted layout with a stable order
func NewWhitelistDocument(set *FindingSet) *WhitelistDocument {
	doc := &WhitelistDocument{
		SchemaVersion: WhitelistSchemaVersion,
		Findings:      []*FindingRecord{},
	}
	for _, f := range set.Sorted() {
		doc.Findings = append(doc.Findings, NewFindingRecord(f))
	}
	return doc
}

// FindingSet validates the document and rebuilds the set. Identities are recomputed from record contents.
func (x *WhitelistDocument) FindingSet() (*FindingSet, error) {
	if x.SchemaVersion > WhitelistSchemaVersion {
		return nil, goerr.Wrap(types.ErrInvalidWhitelist, "unsupported whitelist schema version",
			goerr.V("version", x.SchemaVersion),
			goerr.V("supported", WhitelistSchemaVersion),
		)
	}

	set := NewFindingSet()
	for i, r := range x.Findings {
		if r == nil {
			continue
		}
		if r.CommitHash == "" || r.StringDetected == "" {
			return nil, goerr.Wrap(types.ErrInvalidWhitelist, "record lacks commitHash or stringDetected", goerr.V("index", i))
		}
		set.Add(r.Finding())
	}
	return set, nil
}
