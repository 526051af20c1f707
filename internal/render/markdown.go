package render

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/git-changelog/internal/domain"
)

// RenderMarkdown renders groups as Markdown. Categories follow profile.Order,
// then any category the order does not list, in first-seen order.
// Categories without commits never get a header.
//
// The function is idempotent - given the same input, it produces identical output.
func RenderMarkdown(groups domain.Groups, profile domain.Profile, opts Options) string {
	var lines []string
	if profile.Style == domain.StyleRange {
		lines = append(lines,
			fmt.Sprintf("# Changelog: %s...%s", opts.From, opts.To),
			fmt.Sprintf("*Generated %s*", opts.Date),
			"",
		)
	} else {
		lines = append(lines, fmt.Sprintf("## [%s] - %s", opts.Version, opts.Date), "")
	}

	for _, group := range groups.Ordered(profile.Order) {
		if len(group.Commits) == 0 {
			continue
		}
		if profile.Style == domain.StyleRange {
			lines = append(lines, "## "+group.Category, "")
		} else {
			lines = append(lines, "### "+group.Category)
		}
		for _, c := range group.Commits {
			lines = append(lines, markdownEntry(c, profile))
		}
		lines = append(lines, "")
	}

	doc := strings.Join(lines, "\n")
	if profile.Style == domain.StyleRange {
		doc += "\n"
	}
	return doc
}

func markdownEntry(c domain.Commit, profile domain.Profile) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(c.Description)
	if profile.Links && c.HasPR() {
		fmt.Fprintf(&b, " (#%s)", c.PRNumber)
	}
	if profile.Attribution {
		fmt.Fprintf(&b, " (%s) — %s", c.ShortHash, c.Author)
	}
	return b.String()
}
