// Package gateway provides the commit sources the changelog is built from,
// abstracting away whether history comes from a repository or a pipe.
package gateway

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/naka-gawa/git-changelog/internal/domain"
	"github.com/naka-gawa/git-changelog/internal/parser"
	"github.com/sirupsen/logrus"
)

// Source defines the behavior of a gateway that supplies raw commits.
// Commits are returned in the order the underlying history lists them.
type Source interface {
	Commits(ctx context.Context) ([]domain.RawCommit, error)
}

// RecordReader reads "fullHash|shortHash|author|subject" records, one per line.
type RecordReader struct {
	r      io.Reader
	logger *logrus.Logger
}

// NewRecordReader is a constructor that creates a new instance of RecordReader.
func NewRecordReader(r io.Reader, logger *logrus.Logger) *RecordReader {
	return &RecordReader{r: r, logger: logger}
}

// Commits performs a single blocking read of the whole input. Blank lines are
// skipped, and so are records with fewer than four fields.
func (rr *RecordReader) Commits(ctx context.Context) ([]domain.RawCommit, error) {
	data, err := io.ReadAll(rr.r)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit records: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var commits []domain.RawCommit
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		raw, ok := parser.DecodeRecord(line)
		if !ok {
			rr.logger.Debugf("skipping malformed record on line %d: %q", i+1, line)
			continue
		}
		commits = append(commits, raw)
	}
	rr.logger.Debugf("read %d commit records", len(commits))
	return commits, nil
}
