package domain

import "strings"

// Style selects the document layout a profile renders to.
type Style int

const (
	// StyleRange renders a "Changelog: from...to" document with hash and author attribution.
	StyleRange Style = iota
	// StyleRelease renders a Keep a Changelog version section.
	StyleRelease
)

// Profile bundles the category taxonomy and rendering choices for one changelog flavour.
// Profiles are plain values; the built-in ones are returned fresh by their constructors.
type Profile struct {
	Name string
	// Types maps a lowercased conventional prefix to its category label.
	Types map[string]string
	// Order is the canonical category order used by the Markdown renderer.
	Order []string
	// UnknownLabel is used for conventional subjects whose type is not in Types.
	UnknownLabel string
	// UnconventionalLabel is used for subjects without a conventional prefix.
	UnconventionalLabel string
	// Attribution renders short hash and author next to each entry.
	Attribution bool
	// Links allows "(#N)" suffixes in rendered entries.
	Links bool
	Style Style
}

// GroupedProfile is the many-bucket taxonomy used for piped, pipe-delimited history.
func GroupedProfile() Profile {
	return Profile{
		Name: "grouped",
		Types: map[string]string{
			"feat":     "Features",
			"fix":      "Bug Fixes",
			"docs":     "Documentation",
			"refactor": "Refactoring",
			"perf":     "Performance",
			"test":     "Tests",
			"chore":    "Chores",
			"ci":       "CI/CD",
			"style":    "Style",
			"build":    "Build",
		},
		Order: []string{
			"Features", "Bug Fixes", "Documentation", "Refactoring", "Performance",
			"Tests", "Chores", "CI/CD", "Style", "Build", "Other",
		},
		UnknownLabel:        "Other",
		UnconventionalLabel: "Other",
		Attribution:         true,
		Style:               StyleRange,
	}
}

// KeepAChangelogProfile follows the Keep a Changelog categories.
func KeepAChangelogProfile() Profile {
	return Profile{
		Name: "release",
		Types: map[string]string{
			"feat":      "Added",
			"fix":       "Fixed",
			"refactor":  "Changed",
			"perf":      "Changed",
			"deprecate": "Deprecated",
			"remove":    "Removed",
			"security":  "Security",
			"docs":      "Other",
			"style":     "Other",
			"test":      "Other",
			"ci":        "Other",
			"chore":     "Other",
			"build":     "Other",
		},
		Order: []string{
			"Added", "Changed", "Deprecated", "Removed", "Fixed", "Security", "Other", "Uncategorized",
		},
		UnknownLabel:        "Uncategorized",
		UnconventionalLabel: "Uncategorized",
		Links:               true,
		Style:               StyleRelease,
	}
}

// Label maps a commit type to its category. An empty type means the subject
// carried no conventional prefix.
func (p Profile) Label(commitType string) string {
	if commitType == "" {
		return p.UnconventionalLabel
	}
	if label, ok := p.Types[commitType]; ok {
		return label
	}
	return p.UnknownLabel
}

// WithTypes returns a copy of p whose type table has extra merged over it.
// Keys are matched lowercased, the same way the parser stores types.
func (p Profile) WithTypes(extra map[string]string) Profile {
	types := make(map[string]string, len(p.Types)+len(extra))
	for k, v := range p.Types {
		types[k] = v
	}
	for k, v := range extra {
		types[strings.ToLower(k)] = v
	}
	p.Types = types
	p.Order = append([]string(nil), p.Order...)
	return p
}

// WithLinks returns a copy of p with link rendering switched on or off.
func (p Profile) WithLinks(enabled bool) Profile {
	p.Links = enabled
	return p
}
