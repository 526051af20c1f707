package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/naka-gawa/git-changelog/internal/domain"
	"github.com/sirupsen/logrus"
)

const shortHashLen = 7

// RepositoryError reports a path that does not hold a git repository.
type RepositoryError struct {
	Path string
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s is not a git repository", e.Path)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// RefError reports a revision that cannot be resolved to a commit.
type RefError struct {
	Ref string
	Err error
}

func (e *RefError) Error() string {
	return "ref not found: " + e.Ref
}

func (e *RefError) Unwrap() error { return e.Err }

// GitRange is a Source listing the commits of from..to: reachable from to,
// not reachable from from, newest first by committer time.
type GitRange struct {
	repo     *git.Repository
	fromRef  string
	toRef    string
	fromHash plumbing.Hash
	toHash   plumbing.Hash
	logger   *logrus.Logger
}

// NewGitRange opens the repository at repoPath and resolves both refs.
// The repository is checked first, then fromRef, then toRef.
func NewGitRange(repoPath, fromRef, toRef string, logger *logrus.Logger) (*GitRange, error) {
	logger.Debugf("[git] opening repository at %s", repoPath)
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &RepositoryError{Path: repoPath, Err: err}
	}

	g := &GitRange{repo: repo, fromRef: fromRef, toRef: toRef, logger: logger}
	if g.fromHash, err = g.resolve(fromRef); err != nil {
		return nil, err
	}
	if g.toHash, err = g.resolve(toRef); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GitRange) resolve(ref string) (plumbing.Hash, error) {
	if strings.TrimSpace(ref) == "" {
		return plumbing.ZeroHash, &RefError{Ref: ref, Err: errors.New("empty revision")}
	}
	h, err := g.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, &RefError{Ref: ref, Err: err}
	}
	g.logger.Debugf("[git] resolved %s to %s", ref, h)
	return *h, nil
}

// Commits walks the history of the range.
func (g *GitRange) Commits(ctx context.Context) ([]domain.RawCommit, error) {
	g.logger.Debugf("[git] listing commits in %s..%s", g.fromRef, g.toRef)

	excluded, err := g.reachable(ctx, g.fromHash)
	if err != nil {
		return nil, err
	}

	iter, err := g.repo.Log(&git.LogOptions{From: g.toHash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to read history of %s: %w", g.toRef, err)
	}
	defer iter.Close()

	var commits []domain.RawCommit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if excluded[c.Hash] {
			return nil
		}
		raw := toRawCommit(c)
		if raw.Subject == "" {
			g.logger.Debugf("[git] skipping %s: empty subject", raw.ShortHash)
			return nil
		}
		commits = append(commits, raw)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history of %s: %w", g.toRef, err)
	}

	g.logger.Debugf("[git] found %d commits", len(commits))
	return commits, nil
}

// reachable collects every commit reachable from h, h included.
func (g *GitRange) reachable(ctx context.Context, h plumbing.Hash) (map[plumbing.Hash]bool, error) {
	iter, err := g.repo.Log(&git.LogOptions{From: h})
	if err != nil {
		return nil, fmt.Errorf("failed to read history of %s: %w", g.fromRef, err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]bool)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history of %s: %w", g.fromRef, err)
	}
	return seen, nil
}

func toRawCommit(c *object.Commit) domain.RawCommit {
	hash := c.Hash.String()
	subject := c.Message
	if i := strings.IndexByte(subject, '\n'); i >= 0 {
		subject = subject[:i]
	}
	return domain.RawCommit{
		Hash:      hash,
		ShortHash: hash[:shortHashLen],
		Author:    c.Author.Name,
		Subject:   strings.TrimSpace(subject),
	}
}
