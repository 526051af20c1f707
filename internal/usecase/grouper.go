// Package usecase contains the business logic of the application.
package usecase

import "github.com/naka-gawa/git-changelog/internal/domain"

// Group buckets commits by category. Categories appear in the order they are
// first seen and every group keeps the input order of its commits.
func Group(commits []domain.Commit) domain.Groups {
	index := make(map[string]int)
	var groups domain.Groups
	for _, c := range commits {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, domain.Group{Category: c.Category})
		}
		groups[i].Commits = append(groups[i].Commits, c)
	}
	return groups
}
