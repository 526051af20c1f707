// Package render turns grouped commits into Markdown or JSON documents.
package render

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/git-changelog/internal/domain"
)

// Format is an output document format.
type Format string

const (
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// ParseFormat accepts the format names understood on the command line.
// "md" is an alias of "markdown".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md", "markdown":
		return Markdown, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected markdown or json)", s)
	}
}

// Options carries the document-level labels.
type Options struct {
	// From and To label the revision range (range style).
	From string
	To   string
	// Version labels the release section (release style).
	Version string
	// Date is an ISO 8601 calendar date.
	Date string
}

// Render dispatches to the renderer for format.
func Render(format Format, groups domain.Groups, profile domain.Profile, opts Options) (string, error) {
	switch format {
	case Markdown:
		return RenderMarkdown(groups, profile, opts), nil
	case JSON:
		return RenderJSON(groups, profile, opts)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}
