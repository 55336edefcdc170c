package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var dimensions, tags []string

	cmd := &cobra.Command{
		Use:   "inspect <file.json|id>",
		Short: "List the items of a mandala with their placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.loadDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeInspect(cmd.Context(), cmd.OutOrStdout(), m, parseFilter(dimensions, tags))
		},
	}

	cmd.Flags().StringSliceVar(&dimensions, "dimension", nil, "show only items in these dimensions")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "show only notes with these tags")
	return cmd
}

// writeInspect prints the configuration and an item table in paint order.
func writeInspect(ctx context.Context, w io.Writer, m *mandala.Mandala, f mandala.Filter) error {
	scene := layout.Build(m, layout.WithFilter(f), layout.WithExpanded(layout.ExpandAll))
	loggerFromContext(ctx).Debug("built scene", "items", len(scene.Items))

	fmt.Fprintln(w, StyleTitle.Render(m.ID))
	fmt.Fprintln(w, StyleDim.Render("dimensions: ")+strings.Join(m.Config.DimensionNames(), ", "))
	fmt.Fprintln(w, StyleDim.Render("scales:     ")+strings.Join(m.Config.Scales, ", "))
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(scene.Items))
	for _, it := range scene.Items {
		dim, section := placementOf(m, it)
		rel := scene.Frame.ToRelative(it.Center)
		rows = append(rows, []string{
			strings.Repeat("  ", it.Depth) + string(it.Kind),
			it.ID,
			truncate(strings.Join(it.Text, " "), 32),
			dim,
			section,
			fmt.Sprintf("%.3f, %.3f", rel.X, rel.Y),
			fmt.Sprintf("%.0f, %.0f", it.Center.X, it.Center.Y),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "ID", "Text", "Dimension", "Scale", "Position", "Pixels").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 || col == 5 || col == 6 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%d items shown", len(rows))))
	return nil
}

func placementOf(m *mandala.Mandala, it layout.Item) (string, string) {
	switch it.Kind {
	case mandala.KindNote:
		if n, ok := m.Note(it.ID); ok {
			return n.Dimension, n.Section
		}
	case mandala.KindCharacter:
		if ch, ok := m.Character(it.ID); ok {
			return ch.Dimension, ch.Section
		}
	case mandala.KindImage:
		if img, ok := m.Image(it.ID); ok {
			p := m.Placement(img.Position)
			return p.Dimension, p.Scale
		}
	}
	return "", ""
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}
