// Package domain contains the core data structures and domain logic for the application.
package domain

// RawCommit is one commit as handed over by a commit source.
// Only Subject is guaranteed; the other fields are set when the source supplies them.
type RawCommit struct {
	Hash      string
	ShortHash string
	Author    string
	Subject   string
}

// Commit is a classified commit.
// It is the core domain entity of this application.
type Commit struct {
	// Category is the display label the commit is grouped under.
	Category string
	// Type is the lowercased conventional prefix, empty when the subject has none.
	Type        string
	Description string
	// PRNumber holds the digits of the first "(#N)" token, empty when absent.
	PRNumber  string
	Hash      string
	ShortHash string
	Author    string
	Subject   string
}

// HasPR reports whether a pull request reference was found in the subject.
func (c Commit) HasPR() bool {
	return c.PRNumber != ""
}

// Group is the ordered list of commits that share a category.
type Group struct {
	Category string
	Commits  []Commit
}

// Groups holds every non-empty group in first-seen category order.
type Groups []Group

// Lookup returns the group for category, if present.
func (g Groups) Lookup(category string) (Group, bool) {
	for _, group := range g {
		if group.Category == category {
			return group, true
		}
	}
	return Group{}, false
}

// Total returns the number of commits across all groups.
func (g Groups) Total() int {
	n := 0
	for _, group := range g {
		n += len(group.Commits)
	}
	return n
}

// Ordered returns the groups with the categories listed in order first, in that order,
// followed by the remaining groups in their original order.
func (g Groups) Ordered(order []string) Groups {
	out := make(Groups, 0, len(g))
	listed := make(map[string]bool, len(order))
	for _, category := range order {
		if listed[category] {
			continue
		}
		listed[category] = true
		if group, ok := g.Lookup(category); ok {
			out = append(out, group)
		}
	}
	for _, group := range g {
		if !listed[group.Category] {
			out = append(out, group)
		}
	}
	return out
}
