// Package parser classifies commit subjects written as "type(scope)!: description".
package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/naka-gawa/git-changelog/internal/domain"
)

var (
	conventionalPattern = regexp.MustCompile(`^(\w+)(?:\(.+?\))?!?:\s*(.+)$`)
	prPattern           = regexp.MustCompile(`\(#(\d+)\)`)
)

// Parse classifies a single commit message with the given profile.
// It never fails: subjects without a conventional prefix keep the whole
// first line as their description.
func Parse(message string, profile domain.Profile) domain.Commit {
	line := firstLine(message)

	commit := domain.Commit{
		Description: line,
		PRNumber:    prNumber(line),
	}
	if m := conventionalPattern.FindStringSubmatch(line); m != nil {
		commit.Type = strings.ToLower(m[1])
		commit.Description = strings.TrimSpace(m[2])
	}
	commit.Category = profile.Label(commit.Type)
	return commit
}

// ParseRaw classifies raw and carries its hash and author metadata over.
func ParseRaw(raw domain.RawCommit, profile domain.Profile) domain.Commit {
	commit := Parse(raw.Subject, profile)
	commit.Hash = raw.Hash
	commit.ShortHash = raw.ShortHash
	commit.Author = raw.Author
	commit.Subject = raw.Subject
	return commit
}

// ParseAll classifies every raw commit, preserving order.
func ParseAll(raws []domain.RawCommit, profile domain.Profile) []domain.Commit {
	commits := make([]domain.Commit, 0, len(raws))
	for _, raw := range raws {
		commits = append(commits, ParseRaw(raw, profile))
	}
	return commits
}

// DecodeRecord splits a "fullHash|shortHash|author|subject" line.
// The subject may itself contain '|'. ok is false when fewer than four fields are present.
func DecodeRecord(line string) (domain.RawCommit, bool) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) < 4 {
		return domain.RawCommit{}, false
	}
	return domain.RawCommit{
		Hash:      parts[0],
		ShortHash: parts[1],
		Author:    parts[2],
		Subject:   parts[3],
	}, true
}

// firstLine drops everything after the first newline and trailing whitespace.
// Leading whitespace is kept, so an indented subject is not conventional.
func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimRightFunc(message, unicode.IsSpace)
}

func prNumber(line string) string {
	m := prPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}
