package parser

import (
	"testing"

	"github.com/naka-gawa/git-changelog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name             string
		message          string
		profile          domain.Profile
		expectedType     string
		expectedDesc     string
		expectedPR       string
		expectedCategory string
	}{
		{
			name:             "scoped feature with PR reference, release profile",
			message:          "feat(api): add bulk export (#42)",
			profile:          domain.KeepAChangelogProfile(),
			expectedType:     "feat",
			expectedDesc:     "add bulk export (#42)",
			expectedPR:       "42",
			expectedCategory: "Added",
		},
		{
			name:             "scoped feature with PR reference, grouped profile",
			message:          "feat(api): add bulk export (#42)",
			profile:          domain.GroupedProfile(),
			expectedType:     "feat",
			expectedDesc:     "add bulk export (#42)",
			expectedPR:       "42",
			expectedCategory: "Features",
		},
		{
			name:             "type matching is case-insensitive",
			message:          "FIX: null pointer on empty list",
			profile:          domain.KeepAChangelogProfile(),
			expectedType:     "fix",
			expectedDesc:     "null pointer on empty list",
			expectedCategory: "Fixed",
		},
		{
			name:             "breaking change marker",
			message:          "refactor(core)!: drop legacy loader",
			profile:          domain.KeepAChangelogProfile(),
			expectedType:     "refactor",
			expectedDesc:     "drop legacy loader",
			expectedCategory: "Changed",
		},
		{
			name:             "description whitespace is trimmed",
			message:          "docs:    tidy README   ",
			profile:          domain.GroupedProfile(),
			expectedType:     "docs",
			expectedDesc:     "tidy README",
			expectedCategory: "Documentation",
		},
		{
			name:             "unknown type, release profile",
			message:          "wip: half done",
			profile:          domain.KeepAChangelogProfile(),
			expectedType:     "wip",
			expectedDesc:     "half done",
			expectedCategory: "Uncategorized",
		},
		{
			name:             "unknown type, grouped profile",
			message:          "wip: half done",
			profile:          domain.GroupedProfile(),
			expectedType:     "wip",
			expectedDesc:     "half done",
			expectedCategory: "Other",
		},
		{
			name:             "no conventional prefix keeps the whole line",
			message:          "Merge branch 'main' into topic (#7)",
			profile:          domain.KeepAChangelogProfile(),
			expectedDesc:     "Merge branch 'main' into topic (#7)",
			expectedPR:       "7",
			expectedCategory: "Uncategorized",
		},
		{
			name:             "no conventional prefix, grouped profile",
			message:          "Initial commit",
			profile:          domain.GroupedProfile(),
			expectedDesc:     "Initial commit",
			expectedCategory: "Other",
		},
		{
			name:             "only the first line is considered",
			message:          "perf: faster diff\n\nfixes (#99) in body",
			profile:          domain.KeepAChangelogProfile(),
			expectedType:     "perf",
			expectedDesc:     "faster diff",
			expectedCategory: "Changed",
		},
		{
			name:             "first PR reference wins",
			message:          "fix: backport (#10) of (#20)",
			profile:          domain.KeepAChangelogProfile(),
			expectedType:     "fix",
			expectedDesc:     "backport (#10) of (#20)",
			expectedPR:       "10",
			expectedCategory: "Fixed",
		},
		{
			name:             "bare hash is not a PR reference",
			message:          "chore: closes #12",
			profile:          domain.KeepAChangelogProfile(),
			expectedType:     "chore",
			expectedDesc:     "closes #12",
			expectedCategory: "Other",
		},
		{
			name:             "leading whitespace is not conventional",
			message:          " feat: leading space",
			profile:          domain.GroupedProfile(),
			expectedDesc:     " feat: leading space",
			expectedCategory: "Other",
		},
		{
			name:             "trailing whitespace and carriage return are dropped",
			message:          "Initial commit \r\nbody",
			profile:          domain.GroupedProfile(),
			expectedDesc:     "Initial commit",
			expectedCategory: "Other",
		},
		{
			name:             "prefix without description is not conventional",
			message:          "feat:",
			profile:          domain.KeepAChangelogProfile(),
			expectedDesc:     "feat:",
			expectedCategory: "Uncategorized",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			commit := Parse(tc.message, tc.profile)

			assert.Equal(t, tc.expectedType, commit.Type)
			assert.Equal(t, tc.expectedDesc, commit.Description)
			assert.Equal(t, tc.expectedPR, commit.PRNumber)
			assert.Equal(t, tc.expectedCategory, commit.Category)
			assert.Equal(t, tc.expectedPR != "", commit.HasPR())
		})
	}
}

func TestParse_CustomTypes(t *testing.T) {
	profile := domain.KeepAChangelogProfile().WithTypes(map[string]string{"Revert": "Changed"})

	commit := Parse("revert: undo cache change", profile)

	assert.Equal(t, "Changed", commit.Category)
	assert.Equal(t, "undo cache change", commit.Description)
}

func TestParseRaw(t *testing.T) {
	raw := domain.RawCommit{
		Hash:      "0123456789abcdef0123456789abcdef01234567",
		ShortHash: "0123456",
		Author:    "Alice",
		Subject:   "ci: cache modules",
	}

	commit := ParseRaw(raw, domain.GroupedProfile())

	assert.Equal(t, domain.Commit{
		Category:    "CI/CD",
		Type:        "ci",
		Description: "cache modules",
		Hash:        raw.Hash,
		ShortHash:   "0123456",
		Author:      "Alice",
		Subject:     "ci: cache modules",
	}, commit)
}

func TestParseAll_PreservesOrder(t *testing.T) {
	raws := []domain.RawCommit{
		{Subject: "fix: one"},
		{Subject: "feat: two"},
		{Subject: "three"},
	}

	commits := ParseAll(raws, domain.KeepAChangelogProfile())

	if assert.Len(t, commits, 3) {
		assert.Equal(t, "one", commits[0].Description)
		assert.Equal(t, "two", commits[1].Description)
		assert.Equal(t, "three", commits[2].Description)
	}
}

func TestDecodeRecord(t *testing.T) {
	testCases := []struct {
		name       string
		line       string
		expected   domain.RawCommit
		expectedOK bool
	}{
		{
			name: "four fields",
			line: "abc123|abc|Bob|feat: add x",
			expected: domain.RawCommit{
				Hash: "abc123", ShortHash: "abc", Author: "Bob", Subject: "feat: add x",
			},
			expectedOK: true,
		},
		{
			name: "subject containing a pipe",
			line: "abc123|abc|Bob|fix: a | b",
			expected: domain.RawCommit{
				Hash: "abc123", ShortHash: "abc", Author: "Bob", Subject: "fix: a | b",
			},
			expectedOK: true,
		},
		{
			name:       "too few fields",
			line:       "abc123|abc|feat: add x",
			expectedOK: false,
		},
		{
			name:       "plain subject",
			line:       "feat: add x",
			expectedOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw, ok := DecodeRecord(tc.line)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expected, raw)
		})
	}
}
