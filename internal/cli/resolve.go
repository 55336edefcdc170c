package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var doc string
	var pixels bool

	cmd := &cobra.Command{
		Use:   "resolve <x> <y>",
		Short: "Map a position to its dimension and scale",
		Long: `Map a position to its dimension and scale.

By default x and y are normalized to [-1, 1] relative to the outer ring,
with y pointing down. With --pixels they are absolute pixel coordinates in
the logical frame. The configuration comes from --doc or the defaults.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			cfg := mandala.DefaultConfig()
			if doc != "" {
				m, err := c.loadDocument(cmd.Context(), doc)
				if err != nil {
					return err
				}
				cfg = m.Config
			}
			writeResolve(cmd.OutOrStdout(), cfg, p, pixels)
			return nil
		},
	}

	cmd.Flags().StringVar(&doc, "doc", "", "document (file or id) whose configuration to use")
	cmd.Flags().BoolVar(&pixels, "pixels", false, "treat x and y as frame pixels")
	return cmd
}

func parsePoint(xs, ys string) (geometry.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geometry.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid x %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geometry.Point{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid y %q", ys)
	}
	return geometry.Point{X: x, Y: y}, nil
}

func writeResolve(w io.Writer, cfg mandala.Config, p geometry.Point, pixels bool) {
	cfg = mandala.EnsureConfig(cfg)
	frame := layout.NewFrame(cfg)
	rel, abs := p, frame.ToAbsolute(p)
	if pixels {
		rel, abs = frame.ToRelative(p), p
	}
	pl := geometry.ResolveNormalized(rel, cfg.DimensionNames(), cfg.Scales)
	radius, angle := geometry.ToPolar(abs.Sub(frame.Center))

	kv := func(k, v string) {
		fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%-10s", k))+" "+StyleValue.Render(v))
	}
	kv("dimension", fmt.Sprintf("%s (%d)", pl.Dimension, pl.DimensionIndex))
	kv("scale", fmt.Sprintf("%s (%d)", pl.Scale, pl.ScaleIndex))
	kv("normalized", fmt.Sprintf("%.4f, %.4f", rel.X, rel.Y))
	kv("pixels", fmt.Sprintf("%.2f, %.2f", abs.X, abs.Y))
	kv("polar", fmt.Sprintf("r=%.2f θ=%.2f°", radius, angle))
}
