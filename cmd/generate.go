package cmd

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/git-changelog/internal/clierr"
	"github.com/naka-gawa/git-changelog/internal/domain"
	"github.com/naka-gawa/git-changelog/internal/gateway"
	"github.com/naka-gawa/git-changelog/internal/output"
	"github.com/naka-gawa/git-changelog/internal/render"
	"github.com/naka-gawa/git-changelog/internal/usecase"
	"github.com/spf13/cobra"
)

func (a *app) newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [flags] <from-ref> [to-ref]",
		Short: "Generates a Keep a Changelog section from a revision range",
		Long: `Generates CHANGELOG entries for the commits reachable from to-ref but not from
from-ref. to-ref defaults to HEAD. Commits are grouped into Added, Changed,
Deprecated, Removed, Fixed, Security, Other and Uncategorized.

Exit status is 1 when no ref is given and 2 when the repository or a ref
cannot be resolved.`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runGenerate,
	}

	generateCmd.Flags().String("repo", ".", "Path to git repository")
	generateCmd.Flags().String("version", "", "Version label (default: to-ref without leading v, or Unreleased for HEAD)")
	generateCmd.Flags().String("format", string(render.Markdown), "Output format: markdown or json")
	generateCmd.Flags().String("output", "", "Write to file instead of stdout")
	generateCmd.Flags().Bool("no-links", false, "Omit PR/issue links")
	return generateCmd
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return clierr.Usage("at least one git ref is required.")
	}
	if len(args) > 2 {
		return clierr.Usage("expected <from-ref> [to-ref], got %d arguments", len(args))
	}
	fromRef, toRef := args[0], "HEAD"
	if len(args) == 2 {
		toRef = args[1]
	}

	repoPath, _ := cmd.Flags().GetString("repo")
	if !cmd.Flags().Changed("repo") && a.cfg.Repo != "" {
		repoPath = a.cfg.Repo
	}
	formatName, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") && a.cfg.Format != "" {
		formatName = a.cfg.Format
	}
	noLinks, _ := cmd.Flags().GetBool("no-links")
	if !cmd.Flags().Changed("no-links") {
		noLinks = noLinks || a.cfg.NoLinks
	}
	version, _ := cmd.Flags().GetString("version")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := render.ParseFormat(formatName)
	if err != nil {
		return clierr.Wrap(err, clierr.CodeUsage)
	}

	source, err := gateway.NewGitRange(repoPath, fromRef, toRef, a.logger)
	if err != nil {
		return clierr.Resolve(err)
	}

	if version == "" {
		version = defaultVersion(toRef)
	}

	profile := domain.KeepAChangelogProfile().
		WithTypes(a.cfg.Release.Types).
		WithLinks(!noLinks)

	generator := usecase.NewGenerator(source, a.logger)
	doc, err := generator.Generate(cmd.Context(), profile, format, render.Options{
		Version: version,
		Date:    a.today(),
	})
	if err != nil {
		return clierr.Wrap(err, clierr.CodeUsage)
	}

	if err := output.Write(a.stdout, outputPath, doc); err != nil {
		return clierr.Wrap(fmt.Errorf("failed to write changelog: %w", err), clierr.CodeUsage)
	}
	if outputPath != "" {
		fmt.Fprintf(a.stderr, "Changelog written to %s\n", outputPath)
	}
	return nil
}

// defaultVersion derives the release label from the upper ref of the range.
func defaultVersion(toRef string) string {
	if toRef == "HEAD" {
		return "Unreleased"
	}
	return strings.TrimLeft(toRef, "v")
}
