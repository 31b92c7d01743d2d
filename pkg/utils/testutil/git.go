package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"
)

// GitFixture is a throwaway repository for tests
type GitFixture struct {
	t     *testing.T
	Dir   string
	Repo  *git.Repository
	clock time.Time
}

// NewGitFixture initializes an empty repository in a temporary directory
func NewGitFixture(t *testing.T) *GitFixture {
	t.Helper()
	dir := t.TempDir()
	repo := gt.R1(git.PlainInit(dir, false)).NoError(t)

	return &GitFixture{
		t:     t,
		Dir:   dir,
		Repo:  repo,
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Commit writes files (path -> content) and commits them. An empty content removes the file.
func (x *GitFixture) Commit(msg string, files map[string]string) plumbing.Hash {
	x.t.Helper()
	x.clock = x.clock.Add(time.Minute)
	return x.CommitAt(msg, files, x.clock, x.clock)
}

// CommitAt is Commit with explicit author and committer times
func (x *GitFixture) CommitAt(msg string, files map[string]string, authored, committed time.Time) plumbing.Hash {
	x.t.Helper()
	wt := gt.R1(x.Repo.Worktree()).NoError(x.t)

	for path, content := range files {
		fullPath := filepath.Join(x.Dir, path)
		if content == "" {
			_, err := wt.Remove(path)
			gt.NoError(x.t, err)
			continue
		}
		gt.NoError(x.t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		gt.NoError(x.t, os.WriteFile(fullPath, []byte(content), 0600))
		_, err := wt.Add(path)
		gt.NoError(x.t, err)
	}

	author := &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  authored,
	}
	committer := &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  committed,
	}
	return gt.R1(wt.Commit(msg, &git.CommitOptions{
		Author:            author,
		Committer:         committer,
		AllowEmptyCommits: true,
	})).NoError(x.t)
}

// WriteFile writes a file into the working tree without staging it
func (x *GitFixture) WriteFile(path, content string) {
	x.t.Helper()
	fullPath := filepath.Join(x.Dir, path)
	gt.NoError(x.t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	gt.NoError(x.t, os.WriteFile(fullPath, []byte(content), 0600))
}

// Checkout switches to the branch. When create is true the branch is created at HEAD.
func (x *GitFixture) Checkout(branch string, create bool) {
	x.t.Helper()
	wt := gt.R1(x.Repo.Worktree()).NoError(x.t)
	gt.NoError(x.t, wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: create,
	}))
}

// ResetHard moves the current branch to the commit, dropping later commits from its history
func (x *GitFixture) ResetHard(hash plumbing.Hash) {
	x.t.Helper()
	wt := gt.R1(x.Repo.Worktree()).NoError(x.t)
	gt.NoError(x.t, wt.Reset(&git.ResetOptions{Commit: hash, Mode: git.HardReset}))
}
