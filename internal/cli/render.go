package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/pipeline"
	"github.com/matzehuels/mandala/pkg/store"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string
	formats    []string
	size       int
	dimensions []string
	tags       []string
	expanded   []string
	collapse   bool
	noFont     bool
	detailed   bool
	noCache    bool
	refresh    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file.json|id>",
		Short: "Export a mandala to SVG, PNG, PDF, JSON, DOT or an outline",
		Long: `Export a mandala.

The argument is a JSON document or the id of a document in the configured
store. Every note with children is expanded unless --collapse or --expand
is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				opts.size = c.Config.Render.Size
			}
			if !cmd.Flags().Changed("no-font") {
				opts.noFont = !c.Config.Render.EmbedFont
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, outline (comma-separated)")
	cmd.Flags().IntVar(&opts.size, "size", pipeline.DefaultSize, "edge length in pixels")
	cmd.Flags().StringSliceVar(&opts.dimensions, "dimension", nil, "show only items in these dimensions")
	cmd.Flags().StringSliceVar(&opts.tags, "tag", nil, "show only notes with these tags")
	cmd.Flags().StringSliceVar(&opts.expanded, "expand", nil, "expand only these notes")
	cmd.Flags().BoolVar(&opts.collapse, "collapse", false, "collapse every note")
	cmd.Flags().BoolVar(&opts.noFont, "no-font", false, "do not embed the font in SVG output")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show sections and tags in outlines")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts := pipeline.Options{
		Formats:  opts.formats,
		Size:     opts.size,
		Filter:   parseFilter(opts.dimensions, opts.tags),
		Expanded: opts.expanded,
		Collapse: opts.collapse,
		NoFont:   opts.noFont,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
		Logger:   logger,
	}

	var src store.Source
	if !isDocumentFile(input) {
		st, err := c.newStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		src = st
	}
	runner, err := c.newRunner(ctx, src, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, "Rendering "+input)
	spin.Start()
	var res *pipeline.Result
	if src == nil {
		m, lerr := c.loadDocument(ctx, input)
		if lerr != nil {
			spin.Stop()
			return lerr
		}
		res, err = runner.Export(ctx, m, popts)
	} else {
		popts.ID = input
		res, err = runner.Execute(ctx, popts)
	}
	spin.Stop()
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	single := len(opts.formats) == 1 && opts.output != ""
	printSuccess("Rendered %s", StyleHighlight.Render(res.Mandala.ID))
	printStats(res.Stats.ItemCount, len(res.CacheInfo.Hits), len(res.Artifacts))
	for _, format := range popts.Formats {
		path := outputPath(base, format, opts.output, single)
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
		}
		printFile(path)
	}
	prog.done("Export finished")
	return nil
}

// basePath derives the base output path. Without --output it strips the
// extension from the input; known format extensions are stripped from
// --output.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file written for format. A single format with an
// explicit --output is written exactly there.
func outputPath(base, format, output string, single bool) string {
	if single {
		return output
	}
	switch format {
	case pipeline.FormatOutline:
		return base + ".outline.svg"
	case pipeline.FormatJSON:
		return base + ".scene.json"
	default:
		return base + "." + format
	}
}
