package usecase

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/git-changelog/internal/domain"
	"github.com/naka-gawa/git-changelog/internal/gateway"
	"github.com/naka-gawa/git-changelog/internal/parser"
	"github.com/naka-gawa/git-changelog/internal/render"
	"github.com/sirupsen/logrus"
)

// Generator is the use case for building a changelog document.
// It orchestrates fetching, parsing, grouping and rendering.
type Generator struct {
	source gateway.Source
	logger *logrus.Logger
}

// NewGenerator creates a new Generator instance.
func NewGenerator(source gateway.Source, logger *logrus.Logger) *Generator {
	return &Generator{
		source: source,
		logger: logger,
	}
}

// Generate runs the whole pipeline and returns the rendered document.
// Nothing is returned on error, so callers never emit partial output.
func (g *Generator) Generate(ctx context.Context, profile domain.Profile, format render.Format, opts render.Options) (string, error) {
	g.logger.Debugf("Usecase: generating %s changelog with the %s profile", format, profile.Name)

	raws, err := g.source.Commits(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch commits: %w", err)
	}

	commits := parser.ParseAll(raws, profile)
	groups := Group(commits)
	g.logDistribution(groups)

	doc, err := render.Render(format, groups, profile, opts)
	if err != nil {
		return "", fmt.Errorf("failed to render changelog: %w", err)
	}
	g.logger.Debug("Usecase: rendering complete.")
	return doc, nil
}

// logDistribution reports how commits spread over categories.
func (g *Generator) logDistribution(groups domain.Groups) {
	if len(groups) == 0 {
		g.logger.Debug("Usecase: no commits in range")
		return
	}
	counts := make(stats.Float64Data, 0, len(groups))
	for _, group := range groups {
		counts = append(counts, float64(len(group.Commits)))
		g.logger.WithField("category", group.Category).Debugf("%d commits", len(group.Commits))
	}
	mean, _ := counts.Mean()
	median, _ := counts.Median()
	peak, _ := counts.Max()
	g.logger.WithFields(logrus.Fields{
		"total":      groups.Total(),
		"categories": len(groups),
		"mean":       mean,
		"median":     median,
		"max":        peak,
	}).Debug("Usecase: category distribution")
}
