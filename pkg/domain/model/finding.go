package model

import (
	"crypto/md5" // #nosec G501: identity recipe shared with existing whitelist files
	"encoding/hex"
	"log/slog"
	"sort"

	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

const DateLayout = "2006-01-02 15:04:05"

// Finding is a single detected candidate secret
type Finding struct {
	Branch         types.BranchName     `json:"branch"`
	Commit         string               `json:"commit"`
	CommitHash     types.CommitSHA      `json:"commitHash"`
	CommitAuthor   string               `json:"commitAuthor"`
	Date           string               `json:"date"`
	Path           string               `json:"path"`
	Reason         types.Reason         `json:"reason"`
	Confidence     types.Confidence     `json:"confidence,omitempty"`
	StringDetected types.SecretString   `json:"stringDetected"`
	Acknowledged   bool                 `json:"acknowledged"`
	Classification types.Classification `json:"classification,omitempty"`
}

// NewFindingID computes the content identity of a finding. It is the only equality key of findings.
func NewFindingID(commitHash types.CommitSHA, path string, detected types.SecretString) types.FindingID {
	sum := md5.Sum([]byte(string(commitHash) + path + string(detected))) // #nosec G401
	return types.FindingID(hex.EncodeToString(sum[:]))
}

func (x *Finding) ID() types.FindingID {
	return NewFindingID(x.CommitHash, x.Path, x.StringDetected)
}

// IsAcknowledged returns true if the finding was acknowledged or classified into a resolved category
func (x *Finding) IsAcknowledged() bool {
	return x.Acknowledged || x.Classification.Resolved()
}

func (x *Finding) Copy() *Finding {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}

func (x *Finding) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", x.ID().String()),
		slog.String("branch", x.Branch.String()),
		slog.String("commit", x.CommitHash.Short()),
		slog.String("path", x.Path),
		slog.String("reason", string(x.Reason)),
		slog.Any("string", x.StringDetected),
	)
}

// FindingSet is a set of findings keyed by identity. The first finding added for an identity is kept.
type FindingSet struct {
	items map[types.FindingID]*Finding
}

func NewFindingSet(findings ...*Finding) *FindingSet {
	s := &FindingSet{items: make(map[types.FindingID]*Finding, len(findings))}
	for _, f := range findings {
		s.Add(f)
	}
	return s
}

// Add inserts the finding if its identity is not in the set yet. It returns true when inserted.
func (x *FindingSet) Add(f *Finding) bool {
	if f == nil {
		return false
	}
	if x.items == nil {
		x.items = make(map[types.FindingID]*Finding)
	}
	id := f.ID()
	if _, ok := x.items[id]; ok {
		return false
	}
	x.items[id] = f
	return true
}

func (x *FindingSet) Has(id types.FindingID) bool {
	if x == nil {
		return false
	}
	_, ok := x.items[id]
	return ok
}

func (x *FindingSet) Get(id types.FindingID) *Finding {
	if x == nil {
		return nil
	}
	return x.items[id]
}

func (x *FindingSet) Len() int {
	if x == nil {
		return 0
	}
	return len(x.items)
}

// Merge adds all findings of other into the set
func (x *FindingSet) Merge(other *FindingSet) {
	if other == nil {
		return
	}
	for _, f := range other.items {
		x.Add(f)
	}
}

// IDs returns identities in ascending order
func (x *FindingSet) IDs() []types.FindingID {
	if x == nil {
		return nil
	}
	ids := make([]types.FindingID, 0, len(x.items))
	for id := range x.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Sorted returns findings ordered by path, commit hash and identity so that serialized output is stable
func (x *FindingSet) Sorted() []*Finding {
	if x == nil {
		return nil
	}
	findings := make([]*Finding, 0, len(x.items))
	for _, f := range x.items {
		findings = append(findings, f)
	}
	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.CommitHash != b.CommitHash {
			return a.CommitHash < b.CommitHash
		}
		return a.ID() < b.ID()
	})
	return findings
}

// Copy returns a set holding copies of every finding
func (x *FindingSet) Copy() *FindingSet {
	s := NewFindingSet()
	if x == nil {
		return s
	}
	for _, f := range x.items {
		s.Add(f.Copy())
	}
	return s
}
