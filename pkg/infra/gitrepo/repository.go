package gitrepo

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/domain/interfaces"
	"github.com/m-mizutani/leakgate/pkg/domain/model"
	"github.com/m-mizutani/leakgate/pkg/domain/types"
)

type repository struct {
	repo *git.Repository
	root string
}

var _ interfaces.GitRepository = (*repository)(nil)

func newRepository(repo *git.Repository) (*repository, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryNotFound, "repository has no working tree")
	}
	return &repository{
		repo: repo,
		root: wt.Filesystem.Root(),
	}, nil
}

func (x *repository) Root() string {
	return x.root
}

// Branches returns remote tracking branches of origin. A repository without remotes falls back to local branches.
func (x *repository) Branches(ctx context.Context) ([]types.BranchName, error) {
	refs, err := x.repo.References()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list references")
	}

	var remotes, locals []types.BranchName
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		switch {
		case name.IsRemote():
			short := name.Short()
			if strings.HasPrefix(short, "origin/") && short != "origin/HEAD" {
				remotes = append(remotes, types.BranchName(short))
			}
		case name.IsBranch():
			locals = append(locals, types.BranchName(name.Short()))
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to iterate references")
	}

	branches := remotes
	if len(branches) == 0 {
		branches = locals
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i] < branches[j] })
	return branches, nil
}

// resolve accepts a local branch, a bare branch name of origin (feature) or a remote branch (origin/feature)
func (x *repository) resolve(branch types.BranchName) (*plumbing.Reference, error) {
	candidates := []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(string(branch)),
		plumbing.NewRemoteReferenceName("origin", string(branch)),
		plumbing.ReferenceName("refs/remotes/" + string(branch)),
	}
	for _, name := range candidates {
		ref, err := x.repo.Reference(name, true)
		if err == nil {
			return ref, nil
		}
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, goerr.Wrap(err, "failed to resolve branch", goerr.V("branch", branch))
		}
	}
	return nil, goerr.Wrap(types.ErrInvalidOption, "branch not found", goerr.V("branch", branch))
}

func (x *repository) Commits(ctx context.Context, branch types.BranchName, maxDepth int) ([]*model.Commit, error) {
	ref, err := x.resolve(branch)
	if err != nil {
		return nil, err
	}

	iter, err := x.repo.Log(&git.LogOptions{
		From:  ref.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit log", goerr.V("branch", branch))
	}
	defer iter.Close()

	var commits []*model.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(commits) >= maxDepth {
			return storer.ErrStop
		}
		commits = append(commits, toCommit(c))
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to iterate commits", goerr.V("branch", branch))
	}

	return commits, nil
}

func toCommit(c *object.Commit) *model.Commit {
	return &model.Commit{
		Hash:        types.CommitSHA(c.Hash.String()),
		Message:     c.Message,
		Author:      c.Author.Name,
		AuthorEmail: c.Author.Email,
		When:        c.Author.When,
	}
}

func (x *repository) tree(c *model.Commit) (*object.Tree, error) {
	if c == nil {
		return &object.Tree{}, nil
	}
	obj, err := x.repo.CommitObject(plumbing.NewHash(string(c.Hash)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit", goerr.V("hash", c.Hash))
	}
	tree, err := obj.Tree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tree", goerr.V("hash", c.Hash))
	}
	return tree, nil
}

func (x *repository) Diff(ctx context.Context, older, newer *model.Commit) ([]*model.FileDiff, error) {
	from, err := x.tree(older)
	if err != nil {
		return nil, err
	}
	to, err := x.tree(newer)
	if err != nil {
		return nil, err
	}

	patch, err := from.PatchContext(ctx, to)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute patch", goerr.V("newer", newer.Hash))
	}

	var diffs []*model.FileDiff
	for _, fp := range patch.FilePatches() {
		fromFile, toFile := fp.Files()
		d := &model.FileDiff{}
		if fromFile != nil {
			d.FromPath = fromFile.Path()
		}
		if toFile != nil {
			d.ToPath = toFile.Path()
		}
		d.Patch = renderPatch(fp, d)
		diffs = append(diffs, d)
	}

	return diffs, nil
}

// renderPatch returns added and deleted lines with +/- markers. Unchanged content is omitted.
func renderPatch(fp diff.FilePatch, d *model.FileDiff) []byte {
	if fp.IsBinary() {
		return []byte("Binary files a/" + d.FromPath + " and b/" + d.ToPath + " differ\n")
	}

	var b strings.Builder
	for _, chunk := range fp.Chunks() {
		var marker string
		switch chunk.Type() {
		case diff.Add:
			marker = "+"
		case diff.Delete:
			marker = "-"
		default:
			continue
		}

		content := strings.TrimSuffix(chunk.Content(), "\n")
		for _, line := range strings.Split(content, "\n") {
			b.WriteString(marker)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

func (x *repository) IsTracked(ctx context.Context, path string) (bool, error) {
	idx, err := x.repo.Storer.Index()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to read index")
	}

	if _, err := idx.Entry(filepath.ToSlash(path)); err != nil {
		if errors.Is(err, index.ErrEntryNotFound) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to lookup index entry", goerr.V("path", path))
	}
	return true, nil
}
