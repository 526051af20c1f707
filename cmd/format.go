package cmd

import (
	"strings"

	"github.com/naka-gawa/git-changelog/internal/clierr"
	"github.com/naka-gawa/git-changelog/internal/domain"
	"github.com/naka-gawa/git-changelog/internal/gateway"
	"github.com/naka-gawa/git-changelog/internal/output"
	"github.com/naka-gawa/git-changelog/internal/render"
	"github.com/naka-gawa/git-changelog/internal/usecase"
	"github.com/spf13/cobra"
)

func (a *app) newFormatCmd() *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Formats piped git log records into a grouped changelog",
		Long: `Reads commit records from standard input, one per line, in the form
"fullHash|shortHash|author|subject", e.g. the output of

  git log --pretty=format:'%H|%h|%an|%s' v1.0.0..HEAD

and prints a changelog grouped by commit type.`,
		Args: cobra.NoArgs,
		RunE: a.runFormat,
	}

	formatCmd.Flags().String("format", "md", "Output format: md or json")
	formatCmd.Flags().String("from-ref", "", "Lower ref of the range, used in the heading (required)")
	formatCmd.Flags().String("to-ref", "HEAD", "Upper ref of the range, used in the heading")
	formatCmd.MarkFlagRequired("from-ref")
	return formatCmd
}

func (a *app) runFormat(cmd *cobra.Command, args []string) error {
	fromRef, _ := cmd.Flags().GetString("from-ref")
	toRef, _ := cmd.Flags().GetString("to-ref")
	formatName, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") && a.cfg.Format != "" {
		formatName = a.cfg.Format
	}

	if strings.TrimSpace(fromRef) == "" {
		return clierr.Usage("--from-ref must not be empty")
	}
	if strings.TrimSpace(toRef) == "" {
		return clierr.Usage("--to-ref must not be empty")
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return clierr.Wrap(err, clierr.CodeUsage)
	}

	profile := domain.GroupedProfile().WithTypes(a.cfg.Grouped.Types)
	source := gateway.NewRecordReader(a.stdin, a.logger)

	generator := usecase.NewGenerator(source, a.logger)
	doc, err := generator.Generate(cmd.Context(), profile, format, render.Options{
		From: fromRef,
		To:   toRef,
		Date: a.today(),
	})
	if err != nil {
		return clierr.Wrap(err, clierr.CodeUsage)
	}

	if err := output.Write(a.stdout, "", doc); err != nil {
		return clierr.Wrap(err, clierr.CodeUsage)
	}
	return nil
}
