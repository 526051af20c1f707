package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/naka-gawa/git-changelog/internal/domain"
)

// rangeDocument is the JSON shape of a range-style changelog.
type rangeDocument struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Date   string      `json:"date"`
	Groups orderedJSON `json:"groups"`
	Total  int         `json:"total"`
}

type rangeEntry struct {
	Message string `json:"message"`
	PR      string `json:"pr,omitempty"`
	Hash    string `json:"hash,omitempty"`
	Author  string `json:"author,omitempty"`
}

// releaseDocument is the JSON shape of a release-style changelog.
type releaseDocument struct {
	Version    string      `json:"version"`
	Date       string      `json:"date"`
	Categories orderedJSON `json:"categories"`
}

type releaseEntry struct {
	Description string `json:"description"`
	PR          string `json:"pr,omitempty"`
	Hash        string `json:"hash,omitempty"`
	Author      string `json:"author,omitempty"`
}

// orderedJSON is a JSON object whose keys keep insertion order.
type orderedJSON struct {
	keys   []string
	values []any
}

func (o *orderedJSON) add(key string, value any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o orderedJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := marshal(o.values[i])
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RenderJSON renders groups as an indented JSON document terminated by a newline.
// Groups appear in first-seen order. An entry carries exactly the data its
// Markdown bullet shows: the PR only when links are enabled, hash and author
// only when the profile renders attribution.
func RenderJSON(groups domain.Groups, profile domain.Profile, opts Options) (string, error) {
	var body orderedJSON
	for _, group := range groups {
		if len(group.Commits) == 0 {
			continue
		}
		if profile.Style == domain.StyleRange {
			entries := make([]rangeEntry, 0, len(group.Commits))
			for _, c := range group.Commits {
				hash, author, pr := exposed(c, profile)
				entries = append(entries, rangeEntry{Message: c.Description, PR: pr, Hash: hash, Author: author})
			}
			body.add(group.Category, entries)
		} else {
			entries := make([]releaseEntry, 0, len(group.Commits))
			for _, c := range group.Commits {
				hash, author, pr := exposed(c, profile)
				entries = append(entries, releaseEntry{Description: c.Description, PR: pr, Hash: hash, Author: author})
			}
			body.add(group.Category, entries)
		}
	}

	var doc any
	if profile.Style == domain.StyleRange {
		doc = rangeDocument{From: opts.From, To: opts.To, Date: opts.Date, Groups: body, Total: groups.Total()}
	} else {
		doc = releaseDocument{Version: opts.Version, Date: opts.Date, Categories: body}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding changelog: %w", err)
	}
	return buf.String(), nil
}

func exposed(c domain.Commit, profile domain.Profile) (hash, author, pr string) {
	if profile.Attribution {
		hash, author = c.ShortHash, c.Author
	}
	if profile.Links {
		pr = c.PRNumber
	}
	return hash, author, pr
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
