package model

import (
	"crypto/md5" // #nosec G501
	"encoding/hex"
	"strings"
	"time"

	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

type Commit struct {
	Hash        types.CommitSHA
	Message     string
	Author      string
	AuthorEmail string
	When        time.Time
}

// RevisionPair is two adjacent commits of a branch. Older is nil when Newer is compared with the empty tree.
type RevisionPair struct {
	Older  *Commit
	Newer  *Commit
	Branch types.BranchName
}

// DiffID identifies the change between the two commits regardless of the branch it was reached from
func (x *RevisionPair) DiffID() types.DiffID {
	var older string
	if x.Older != nil {
		older = string(x.Older.Hash)
	}
	sum := md5.Sum([]byte(older + string(x.Newer.Hash))) // #nosec G401
	return types.DiffID(hex.EncodeToString(sum[:]))
}

// FileDiff is a changed file entry of a diff. Patch holds the raw patch bytes.
type FileDiff struct {
	FromPath string
	ToPath   string
	Patch    []byte
}

// Path returns the new path if present, otherwise the old path
func (x *FileDiff) Path() string {
	if x.ToPath != "" {
		return x.ToPath
	}
	return x.FromPath
}

// DiffInput is what a detector receives for one changed file
type DiffInput struct {
	Text   string
	Path   string
	Branch types.BranchName
	Commit *Commit
}

// NewFinding builds a finding attributed to the commit that introduced the diff text
func (x *DiffInput) NewFinding(reason types.Reason, confidence types.Confidence, detected string) *Finding {
	f := &Finding{
		Branch:         x.Branch,
		Path:           x.Path,
		Reason:         reason,
		Confidence:     confidence,
		StringDetected: types.SecretString(detected),
	}
	if x.Commit != nil {
		f.Commit = strings.ReplaceAll(x.Commit.Message, "\n", "")
		f.CommitHash = x.Commit.Hash
		f.CommitAuthor = x.Commit.AuthorEmail
		f.Date = x.Commit.When.UTC().Format(DateLayout)
	}
	return f
}
