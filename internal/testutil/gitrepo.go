// Package testutil provides test helpers for git-changelog tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// GitRepo is a throwaway repository whose commits get strictly increasing timestamps.
type GitRepo struct {
	t    *testing.T
	Dir  string
	Repo *git.Repository
	n    int
	base time.Time
}

// NewGitRepo initializes an empty repository in a temporary directory.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return &GitRepo{
		t:    t,
		Dir:  dir,
		Repo: repo,
		base: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Commit records a commit with the given message and author and returns its hash.
func (r *GitRepo) Commit(message, author string) plumbing.Hash {
	r.t.Helper()
	r.n++

	worktree, err := r.Repo.Worktree()
	require.NoError(r.t, err)

	name := fmt.Sprintf("file-%03d.txt", r.n)
	require.NoError(r.t, os.WriteFile(filepath.Join(r.Dir, name), []byte(message), 0o644))
	_, err = worktree.Add(name)
	require.NoError(r.t, err)

	sig := &object.Signature{
		Name:  author,
		Email: author + "@example.com",
		When:  r.base.Add(time.Duration(r.n) * time.Minute),
	}
	h, err := worktree.Commit(message, &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(r.t, err)
	return h
}

// Tag creates a lightweight tag pointing at h.
func (r *GitRepo) Tag(name string, h plumbing.Hash) {
	r.t.Helper()
	_, err := r.Repo.CreateTag(name, h, nil)
	require.NoError(r.t, err)
}

// AnnotatedTag creates an annotated tag pointing at h.
func (r *GitRepo) AnnotatedTag(name string, h plumbing.Hash) {
	r.t.Helper()
	_, err := r.Repo.CreateTag(name, h, &git.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Release Bot", Email: "bot@example.com", When: r.base},
		Message: "release " + name,
	})
	require.NoError(r.t, err)
}
